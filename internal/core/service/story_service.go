package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/memento-app/memento-api/internal/core/domain"
	"github.com/memento-app/memento-api/internal/core/ports"
)

// StoryService implements the story use-cases: listing, reading, authoring,
// ownership-checked mutation, and like toggling.
type StoryService struct {
	stories ports.StoryRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewStoryService(stories ports.StoryRepository, users ports.UserRepository, logger zerolog.Logger) *StoryService {
	return &StoryService{stories: stories, users: users, logger: logger}
}

// List returns every story newest-first with authors resolved in one batch.
func (s *StoryService) List(ctx context.Context) ([]*ports.StoryView, error) {
	stories, err := s.stories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(stories))
	for _, st := range stories {
		ids = append(ids, st.AuthorID)
	}
	authors, err := s.users.FindManyByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.StoryView, len(stories))
	for i, st := range stories {
		views[i] = storyView(st, authors[st.AuthorID])
	}
	return views, nil
}

func (s *StoryService) Get(ctx context.Context, id string) (*ports.StoryView, error) {
	story, err := s.stories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, story), nil
}

func (s *StoryService) Create(ctx context.Context, in ports.CreateStoryInput) (*ports.StoryView, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	story := &domain.Story{
		Title:     title,
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.stories.Create(ctx, story)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("story_id", created.ID).Str("author_id", in.AuthorID).Msg("story created")
	return s.resolve(ctx, created), nil
}

// Update replaces only the supplied fields; omitted fields keep their stored
// value. Only the author may update.
func (s *StoryService) Update(ctx context.Context, in ports.UpdateStoryInput) (*ports.StoryView, error) {
	story, err := s.stories.FindByID(ctx, in.StoryID)
	if err != nil {
		return nil, err
	}
	if story.AuthorID != in.RequesterID {
		return nil, domain.ErrNotStoryAuthor
	}

	// Blank submissions keep the stored value, same as omitted fields.
	title := in.Title
	if title != nil && strings.TrimSpace(*title) == "" {
		title = nil
	}
	content := in.Content
	if content != nil && strings.TrimSpace(*content) == "" {
		content = nil
	}

	updated, err := s.stories.Update(ctx, in.StoryID, ports.StoryUpdate{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, updated), nil
}

// Delete removes the story. Comments referencing it are left in place.
func (s *StoryService) Delete(ctx context.Context, storyID, requesterID string) error {
	story, err := s.stories.FindByID(ctx, storyID)
	if err != nil {
		return err
	}
	if story.AuthorID != requesterID {
		return domain.ErrNotStoryAuthor
	}

	if err := s.stories.Delete(ctx, storyID); err != nil {
		return err
	}

	s.logger.Info().Str("story_id", storyID).Msg("story deleted")
	return nil
}

// ToggleLike flips the requester's membership in the story's like set. The
// flip happens atomically in the store, so concurrent toggles on the same
// story cannot lose updates.
func (s *StoryService) ToggleLike(ctx context.Context, storyID, requesterID string) (*ports.StoryView, error) {
	story, err := s.stories.ToggleLike(ctx, storyID, requesterID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, story), nil
}

// resolve attaches the author's public fields to a single story.
func (s *StoryService) resolve(ctx context.Context, story *domain.Story) *ports.StoryView {
	author, err := s.users.FindByID(ctx, story.AuthorID)
	if err != nil {
		// Author account gone; keep the ID so the reference stays visible.
		author = nil
	}
	return storyView(story, author)
}

func storyView(story *domain.Story, author *domain.User) *ports.StoryView {
	view := &ports.StoryView{
		ID:        story.ID,
		Title:     story.Title,
		Content:   story.Content,
		Author:    ports.AuthorView{ID: story.AuthorID},
		Likes:     story.Likes,
		CreatedAt: story.CreatedAt,
		UpdatedAt: story.UpdatedAt,
	}
	if view.Likes == nil {
		view.Likes = []string{}
	}
	if author != nil {
		view.Author.Username = author.Username
	}
	return view
}
