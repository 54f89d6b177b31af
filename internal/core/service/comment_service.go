package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/memento-app/memento-api/internal/core/domain"
	"github.com/memento-app/memento-api/internal/core/ports"
)

// CommentService implements commenting on stories.
type CommentService struct {
	comments ports.CommentRepository
	stories  ports.StoryRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, stories ports.StoryRepository, users ports.UserRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, stories: stories, users: users, logger: logger}
}

// ListForStory returns all comments on a story newest-first. A story that
// does not exist (or was deleted) simply has no comments.
func (s *CommentService) ListForStory(ctx context.Context, storyID string) ([]*ports.CommentView, error) {
	comments, err := s.comments.FindByStory(ctx, storyID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	for _, cm := range comments {
		ids = append(ids, cm.AuthorID)
	}
	authors, err := s.users.FindManyByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.CommentView, len(comments))
	for i, cm := range comments {
		views[i] = commentView(cm, authors[cm.AuthorID])
	}
	return views, nil
}

// Create attaches a comment to an existing story.
func (s *CommentService) Create(ctx context.Context, in ports.CreateCommentInput) (*ports.CommentView, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrValidation
	}

	// The story must exist at creation time.
	if _, err := s.stories.FindByID(ctx, in.StoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		StoryID:   in.StoryID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("comment_id", created.ID).Str("story_id", in.StoryID).Msg("comment created")

	author, err := s.users.FindByID(ctx, created.AuthorID)
	if err != nil {
		author = nil
	}
	return commentView(created, author), nil
}

// Delete removes a comment. Only the author may delete.
func (s *CommentService) Delete(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != requesterID {
		return domain.ErrNotCommentAuthor
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info().Str("comment_id", commentID).Msg("comment deleted")
	return nil
}

func commentView(comment *domain.Comment, author *domain.User) *ports.CommentView {
	view := &ports.CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    ports.AuthorView{ID: comment.AuthorID},
		StoryID:   comment.StoryID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if author != nil {
		view.Author.Username = author.Username
	}
	return view
}
