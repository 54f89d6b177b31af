package ports

import (
	"context"
	"time"
)

// AuthorView is the public projection of a story or comment author.
type AuthorView struct {
	ID       string
	Username string
}

// StoryView is a story with its author resolved to public fields.
type StoryView struct {
	ID        string
	Title     string
	Content   string
	Author    AuthorView
	Likes     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateStoryInput carries the fields for a new story. AuthorID is the
// authenticated requester, never client-supplied.
type CreateStoryInput struct {
	Title    string
	Content  string
	AuthorID string
}

// UpdateStoryInput carries a partial story update. Nil fields retain the
// stored value. RequesterID is checked against the story author.
type UpdateStoryInput struct {
	StoryID     string
	RequesterID string
	Title       *string
	Content     *string
}

// StoryService defines the story use-cases.
type StoryService interface {
	List(ctx context.Context) ([]*StoryView, error)
	Get(ctx context.Context, id string) (*StoryView, error)
	Create(ctx context.Context, in CreateStoryInput) (*StoryView, error)
	Update(ctx context.Context, in UpdateStoryInput) (*StoryView, error)
	// Delete removes the story. Only the author may delete; comments on the
	// story are left in place.
	Delete(ctx context.Context, storyID, requesterID string) error
	// ToggleLike flips the requester's membership in the story's like set.
	ToggleLike(ctx context.Context, storyID, requesterID string) (*StoryView, error)
}
