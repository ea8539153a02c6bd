package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/api/handler/v1/response"
	"github.com/globetrotter/api/internal/config"
	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/pkg/jwthelper"
	"github.com/globetrotter/api/internal/service"
)

type mockAuthService struct {
	registerFn func(ctx context.Context, user domain.User, password string) (domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (domain.User, error)
}

var _ AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) Register(ctx context.Context, user domain.User, password string) (domain.User, error) {
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return m.loginFn(ctx, email, password)
}

func newAuthRouter(svc AuthService, uSvc AuthUserService) *gin.Engine {
	conf := &config.APIConfig{JWTSigningKey: "test-signing-key"}
	handler := NewAuthHandler(conf, svc, uSvc)

	router := gin.New()
	router.POST("/auth/register", handler.HandleRegister)
	router.POST("/auth/login", handler.HandleLogin)
	router.GET("/auth/me", asUser("user-1"), handler.HandleGetMe)
	router.PUT("/auth/profile", asUser("user-1"), handler.HandleUpdateProfile)

	return router
}

func TestHandleRegister(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, user domain.User, password string) (domain.User, error) {
			user.ID = "user-1"
			return user, nil
		},
	}
	router := newAuthRouter(svc, &stubUserService{})

	recorder := serveRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"email":      "jane@example.com",
		"password":   "passw0rd1",
		"first_name": "Jane",
		"last_name":  "Doe",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	resp := decodeBody[response.AuthResponse](t, recorder)
	assert.Equal(t, "user-1", resp.User.ID)

	// The issued token must carry the new user's id.
	claims, err := jwthelper.ParseToken([]byte("test-signing-key"), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, user domain.User, password string) (domain.User, error) {
			return domain.User{}, service.ErrUserEmailExists
		},
	}
	router := newAuthRouter(svc, &stubUserService{})

	recorder := serveRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"email":      "jane@example.com",
		"password":   "passw0rd1",
		"first_name": "Jane",
		"last_name":  "Doe",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleRegister_WeakPassword(t *testing.T) {
	router := newAuthRouter(&mockAuthService{}, &stubUserService{})

	recorder := serveRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"email":      "jane@example.com",
		"password":   "short1",
		"first_name": "Jane",
		"last_name":  "Doe",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleLogin_WrongCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, email, password string) (domain.User, error) {
			return domain.User{}, service.ErrWrongPassword
		},
	}
	router := newAuthRouter(svc, &stubUserService{})

	recorder := serveRequest(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong1234",
	})

	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Unknown email and wrong password must be indistinguishable.
	body := decodeBody[map[string]string](t, recorder)
	assert.Equal(t, "invalid email or password", body["error"])
}

func TestHandleGetMe(t *testing.T) {
	uSvc := &stubUserService{user: domain.User{ID: "user-1", Email: "jane@example.com"}}
	router := newAuthRouter(&mockAuthService{}, uSvc)

	recorder := serveRequest(t, router, http.MethodGet, "/auth/me", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	user := decodeBody[domain.User](t, recorder)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestHandleGetMe_UserGone(t *testing.T) {
	uSvc := &stubUserService{err: service.ErrUserNotFound}
	router := newAuthRouter(&mockAuthService{}, uSvc)

	recorder := serveRequest(t, router, http.MethodGet, "/auth/me", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
