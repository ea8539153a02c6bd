package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/repository"
)

type mockPostRepo struct {
	createFn         func(ctx context.Context, post domain.Post) (domain.Post, error)
	findLatestFn     func(ctx context.Context, limit int) ([]domain.Post, error)
	incrementLikesFn func(ctx context.Context, id string) error
}

var _ PostRepository = (*mockPostRepo)(nil)

func (m *mockPostRepo) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	return m.createFn(ctx, post)
}

func (m *mockPostRepo) FindLatest(ctx context.Context, limit int) ([]domain.Post, error) {
	return m.findLatestFn(ctx, limit)
}

func (m *mockPostRepo) IncrementLikes(ctx context.Context, id string) error {
	return m.incrementLikesFn(ctx, id)
}

func TestPostService_CreatePost_StampsAuthor(t *testing.T) {
	repo := &mockPostRepo{
		createFn: func(ctx context.Context, post domain.Post) (domain.Post, error) {
			post.ID = "post-1"
			return post, nil
		},
	}
	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), domain.Post{
		Title:   "Two weeks in Japan",
		Content: "Highlights and costs.",
		UserID:  "spoofed",
	}, domain.User{ID: "user-1", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	assert.Equal(t, "user-1", post.UserID)
	assert.Equal(t, "Jane Doe", post.UserName)
}

func TestPostService_GetPosts_DefaultLimit(t *testing.T) {
	var gotLimit int
	repo := &mockPostRepo{
		findLatestFn: func(ctx context.Context, limit int) ([]domain.Post, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewPostService(repo)

	_, err := svc.GetPosts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultFeedLimit, gotLimit)

	_, err = svc.GetPosts(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
}

func TestPostService_LikePost_NotFound(t *testing.T) {
	repo := &mockPostRepo{
		incrementLikesFn: func(ctx context.Context, id string) error {
			return repository.ErrPostNotFound
		},
	}
	svc := NewPostService(repo)

	err := svc.LikePost(context.Background(), "post-404")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
