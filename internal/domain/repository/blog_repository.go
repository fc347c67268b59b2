package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	List(ctx context.Context) ([]*entity.BlogPost, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) error

	// IncrementViews bumps the view counter atomically and returns the new
	// value.
	IncrementViews(ctx context.Context, id string) (int64, error)

	// SetLiked adds or removes userID from the post's like set.
	SetLiked(ctx context.Context, id, userID string, liked bool) error
}
