package ports

import (
	"context"

	"github.com/memento-app/memento-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindByStory returns all comments for a story, newest first.
	FindByStory(ctx context.Context, storyID string) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
