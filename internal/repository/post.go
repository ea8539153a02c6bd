package repository

import (
	"context"
	"fmt"

	"github.com/globetrotter/api/internal/domain"
	"github.com/globetrotter/api/internal/repository/dao"
)

var ErrPostNotFound = dao.ErrPostNotFound

type PostDAO interface {
	Insert(ctx context.Context, post dao.Post) (dao.Post, error)
	FindLatest(ctx context.Context, limit int) ([]dao.Post, error)
	IncrementLikes(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type PostRepository struct {
	dao PostDAO
}

func NewPostRepository(dao PostDAO) *PostRepository {
	return &PostRepository{
		dao: dao,
	}
}

func (r *PostRepository) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	created, err := r.dao.Insert(ctx, dao.Post{
		UserID:   post.UserID,
		UserName: post.UserName,
		Title:    post.Title,
		Content:  post.Content,
		TripID:   post.TripID,
	})
	if err != nil {
		return domain.Post{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PostRepository) FindLatest(ctx context.Context, limit int) ([]domain.Post, error) {
	found, err := r.dao.FindLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLatest -> %w", err)
	}

	posts := make([]domain.Post, 0, len(found))
	for _, post := range found {
		posts = append(posts, r.daoToDomain(post))
	}

	return posts, nil
}

func (r *PostRepository) IncrementLikes(ctx context.Context, id string) error {
	if err := r.dao.IncrementLikes(ctx, id); err != nil {
		return fmt.Errorf("r.dao.IncrementLikes -> %w", err)
	}

	return nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *PostRepository) daoToDomain(p dao.Post) domain.Post {
	return domain.Post{
		ID:        p.ID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Title:     p.Title,
		Content:   p.Content,
		TripID:    p.TripID,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
	}
}
