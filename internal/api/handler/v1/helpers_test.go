package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/globetrotter/api/internal/api/middleware"
	"github.com/globetrotter/api/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUserService resolves every context user id to the same user.
type stubUserService struct {
	user domain.User
	err  error
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	if s.err != nil {
		return domain.User{}, s.err
	}
	return s.user, nil
}

func (s *stubUserService) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (domain.User, error) {
	if s.err != nil {
		return domain.User{}, s.err
	}
	return s.user, nil
}

// asUser injects the authenticated user id the way the JWT middleware
// would, so handler tests skip token plumbing.
func asUser(userID string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.CtxKeyUserID, userID)
	}
}

func serveRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(recorder.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body %q: %v", recorder.Body.String(), err)
	}

	return out
}
