package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/memento-app/memento-api/internal/core/domain"
	"github.com/memento-app/memento-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. IDs are opaque
// strings here; only the mongo layer cares about hex ObjectIDs.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindManyByID(_ context.Context, ids []string) (map[string]*domain.User, error) {
	result := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = cloneUser(u)
		}
	}
	return result, nil
}

type stubStoryRepo struct {
	stories map[string]*domain.Story
	nextID  int
}

func newStubStoryRepo() *stubStoryRepo {
	return &stubStoryRepo{stories: make(map[string]*domain.Story)}
}

func cloneStory(s *domain.Story) *domain.Story {
	clone := *s
	clone.Likes = append([]string{}, s.Likes...)
	return &clone
}

func (r *stubStoryRepo) Create(_ context.Context, story *domain.Story) (*domain.Story, error) {
	r.nextID++
	created := cloneStory(story)
	created.ID = fmt.Sprintf("story-%d", r.nextID)
	r.stories[created.ID] = cloneStory(created)
	return created, nil
}

func (r *stubStoryRepo) FindByID(_ context.Context, id string) (*domain.Story, error) {
	if s, ok := r.stories[id]; ok {
		return cloneStory(s), nil
	}
	return nil, domain.ErrStoryNotFound
}

func (r *stubStoryRepo) FindAll(_ context.Context) ([]*domain.Story, error) {
	out := make([]*domain.Story, 0, len(r.stories))
	for _, s := range r.stories {
		out = append(out, cloneStory(s))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubStoryRepo) Update(_ context.Context, id string, upd ports.StoryUpdate) (*domain.Story, error) {
	s, ok := r.stories[id]
	if !ok {
		return nil, domain.ErrStoryNotFound
	}
	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.Content != nil {
		s.Content = *upd.Content
	}
	return cloneStory(s), nil
}

func (r *stubStoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.stories[id]; !ok {
		return domain.ErrStoryNotFound
	}
	delete(r.stories, id)
	return nil
}

func (r *stubStoryRepo) ToggleLike(_ context.Context, storyID, userID string) (*domain.Story, error) {
	s, ok := r.stories[storyID]
	if !ok {
		return nil, domain.ErrStoryNotFound
	}
	if s.LikedBy(userID) {
		likes := make([]string, 0, len(s.Likes))
		for _, id := range s.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		s.Likes = likes
	} else {
		s.Likes = append(s.Likes, userID)
	}
	return cloneStory(s), nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	created := *comment
	created.ID = fmt.Sprintf("comment-%d", r.nextID)
	stored := created
	r.comments[created.ID] = &stored
	return &created, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	if c, ok := r.comments[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (r *stubCommentRepo) FindByStory(_ context.Context, storyID string) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0)
	for _, c := range r.comments {
		if c.StoryID == storyID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}
