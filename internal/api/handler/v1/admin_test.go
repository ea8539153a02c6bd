package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/domain"
)

type mockAdminService struct {
	getStatsFn func(ctx context.Context) (domain.AdminStats, error)
}

var _ AdminService = (*mockAdminService)(nil)

func (m *mockAdminService) GetStats(ctx context.Context) (domain.AdminStats, error) {
	return m.getStatsFn(ctx)
}

func newAdminRouter(svc AdminService, user domain.User) *gin.Engine {
	handler := NewAdminHandler(svc, &stubUserService{user: user})

	router := gin.New()
	router.GET("/admin/stats", asUser(user.ID), handler.HandleGetStats)

	return router
}

func TestHandleGetStats(t *testing.T) {
	svc := &mockAdminService{
		getStatsFn: func(ctx context.Context) (domain.AdminStats, error) {
			return domain.AdminStats{
				UsersCount: 12,
				TripsCount: 34,
				TopCities:  []domain.CityVisits{{CityID: "city-1", Count: 9}},
			}, nil
		},
	}
	router := newAdminRouter(svc, domain.User{ID: "admin-1", IsAdmin: true})

	recorder := serveRequest(t, router, http.MethodGet, "/admin/stats", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	stats := decodeBody[domain.AdminStats](t, recorder)
	assert.Equal(t, int64(12), stats.UsersCount)
	require.Len(t, stats.TopCities, 1)
	assert.Equal(t, int64(9), stats.TopCities[0].Count)
}

func TestHandleGetStats_NonAdmin(t *testing.T) {
	router := newAdminRouter(&mockAdminService{}, domain.User{ID: "user-1"})

	recorder := serveRequest(t, router, http.MethodGet, "/admin/stats", nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
