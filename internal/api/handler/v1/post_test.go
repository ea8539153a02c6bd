package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/service"
)

type mockPostService struct {
	createPostFn func(ctx context.Context, post domain.Post, author domain.User) (domain.Post, error)
	getPostsFn   func(ctx context.Context, limit int) ([]domain.Post, error)
	likePostFn   func(ctx context.Context, id string) error
}

var _ PostService = (*mockPostService)(nil)

func (m *mockPostService) CreatePost(ctx context.Context, post domain.Post, author domain.User) (domain.Post, error) {
	return m.createPostFn(ctx, post, author)
}

func (m *mockPostService) GetPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	return m.getPostsFn(ctx, limit)
}

func (m *mockPostService) LikePost(ctx context.Context, id string) error {
	return m.likePostFn(ctx, id)
}

func newPostRouter(svc PostService) *gin.Engine {
	uSvc := &stubUserService{user: domain.User{ID: "user-1", FirstName: "Jane", LastName: "Doe"}}
	handler := NewPostHandler(svc, uSvc)

	router := gin.New()
	router.GET("/posts", handler.HandleGetPosts)

	authed := router.Group("", asUser("user-1"))
	authed.POST("/posts", handler.HandleCreatePost)
	authed.POST("/posts/:postID/like", handler.HandleLikePost)

	return router
}

func TestHandleCreatePost(t *testing.T) {
	svc := &mockPostService{
		createPostFn: func(ctx context.Context, post domain.Post, author domain.User) (domain.Post, error) {
			post.ID = "post-1"
			post.UserID = author.ID
			post.UserName = author.FullName()
			return post, nil
		},
	}
	router := newPostRouter(svc)

	recorder := serveRequest(t, router, http.MethodPost, "/posts", gin.H{
		"title":   "Two weeks in Japan",
		"content": "Highlights and costs.",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	post := decodeBody[domain.Post](t, recorder)
	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "Jane Doe", post.UserName)
}

func TestHandleCreatePost_MissingTitle(t *testing.T) {
	router := newPostRouter(&mockPostService{})

	recorder := serveRequest(t, router, http.MethodPost, "/posts", gin.H{
		"content": "No title here.",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleGetPosts(t *testing.T) {
	var gotLimit int
	svc := &mockPostService{
		getPostsFn: func(ctx context.Context, limit int) ([]domain.Post, error) {
			gotLimit = limit
			return []domain.Post{{ID: "post-1"}}, nil
		},
	}
	router := newPostRouter(svc)

	t.Run("explicit limit", func(t *testing.T) {
		recorder := serveRequest(t, router, http.MethodGet, "/posts?limit=5", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 5, gotLimit)
	})

	t.Run("invalid limit", func(t *testing.T) {
		recorder := serveRequest(t, router, http.MethodGet, "/posts?limit=lots", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandleLikePost_NotFound(t *testing.T) {
	svc := &mockPostService{
		likePostFn: func(ctx context.Context, id string) error {
			return service.ErrPostNotFound
		},
	}
	router := newPostRouter(svc)

	recorder := serveRequest(t, router, http.MethodPost, "/posts/post-404/like", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
