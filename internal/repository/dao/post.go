package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID     string `gorm:"primaryKey"`
	UserID string `gorm:"not null;index"`

	UserName string `gorm:"not null"`
	Title    string `gorm:"not null"`
	Content  string `gorm:"not null;type:text"`
	TripID   string

	Likes int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;index"`
}

type PostDAO struct {
	db *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{
		db: db,
	}
}

func (d *PostDAO) Insert(ctx context.Context, post Post) (Post, error) {
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now().UTC()

	result := d.db.WithContext(ctx).Create(&post)
	if result.Error != nil {
		return Post{}, result.Error
	}

	return post, nil
}

// FindLatest returns the newest posts first, capped at limit.
func (d *PostDAO) FindLatest(ctx context.Context, limit int) ([]Post, error) {
	var posts []Post

	result := d.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

// IncrementLikes bumps the like counter atomically in the store.
func (d *PostDAO) IncrementLikes(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).
		Model(&Post{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (d *PostDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Post{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
