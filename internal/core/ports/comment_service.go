package ports

import (
	"context"
	"time"
)

// CommentView is a comment with its author resolved to public fields.
type CommentView struct {
	ID        string
	Content   string
	Author    AuthorView
	StoryID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCommentInput carries the fields for a new comment. AuthorID is the
// authenticated requester.
type CreateCommentInput struct {
	StoryID  string
	Content  string
	AuthorID string
}

// CommentService defines the comment use-cases.
type CommentService interface {
	ListForStory(ctx context.Context, storyID string) ([]*CommentView, error)
	// Create fails with domain.ErrStoryNotFound when the story is absent.
	Create(ctx context.Context, in CreateCommentInput) (*CommentView, error)
	// Delete removes the comment. Only the author may delete.
	Delete(ctx context.Context, commentID, requesterID string) error
}
