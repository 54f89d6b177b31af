package ports

import (
	"context"

	"github.com/memento-app/memento-api/internal/core/domain"
)

// StoryUpdate carries the mutable story fields for a partial update. Nil
// means "keep the stored value".
type StoryUpdate struct {
	Title   *string
	Content *string
}

// StoryRepository defines persistence operations for stories.
type StoryRepository interface {
	Create(ctx context.Context, story *domain.Story) (*domain.Story, error)
	FindByID(ctx context.Context, id string) (*domain.Story, error)
	// FindAll returns every story, newest first by creation time.
	FindAll(ctx context.Context) ([]*domain.Story, error)
	Update(ctx context.Context, id string, upd StoryUpdate) (*domain.Story, error)
	Delete(ctx context.Context, id string) error
	// ToggleLike atomically flips userID's membership in the story's like
	// set within a single document write and returns the updated story.
	ToggleLike(ctx context.Context, storyID, userID string) (*domain.Story, error)
}
