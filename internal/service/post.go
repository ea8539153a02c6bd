package service

import (
	"context"
	"fmt"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/repository"
)

var ErrPostNotFound = repository.ErrPostNotFound

// defaultFeedLimit caps the feed when the caller does not supply a limit.
const defaultFeedLimit = 50

type PostRepository interface {
	Create(ctx context.Context, post domain.Post) (domain.Post, error)
	FindLatest(ctx context.Context, limit int) ([]domain.Post, error)
	IncrementLikes(ctx context.Context, id string) error
}

type PostService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) *PostService {
	return &PostService{
		repo: repo,
	}
}

// CreatePost stamps the author's id and display name onto the post. The
// name is captured now; later profile renames do not rewrite old posts.
func (s *PostService) CreatePost(ctx context.Context, post domain.Post, author domain.User) (domain.Post, error) {
	post.UserID = author.ID
	post.UserName = author.FullName()

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return domain.Post{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PostService) GetPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	posts, err := s.repo.FindLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindLatest -> %w", err)
	}

	return posts, nil
}

// LikePost bumps the like counter. Repeat likes from the same user are
// counted again; there is no dedup.
func (s *PostService) LikePost(ctx context.Context, id string) error {
	if err := s.repo.IncrementLikes(ctx, id); err != nil {
		return fmt.Errorf("s.repo.IncrementLikes -> %w", err)
	}

	return nil
}
