package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewAuthenticator(testSigningKey).VerifyJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": ctx.GetString(CtxKeyUserID)})
	})

	return router
}

func serve(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestVerifyJWT(t *testing.T) {
	router := newProtectedRouter()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), "user-1")
	require.NoError(t, err)

	recorder := serve(t, router, "Bearer "+token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user-1")
}

func TestVerifyJWT_Failures(t *testing.T) {
	router := newProtectedRouter()

	otherKeyToken, err := jwthelper.GenerateToken([]byte("other-key"), "user-1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer header", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "wrong signing key", header: "Bearer " + otherKeyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
