package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/memento-app/memento-api/internal/core/domain"
	"github.com/memento-app/memento-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username: username,
		Email:    username + "@x.com",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func TestStoryService_CreateAndGet(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewStoryService(stories, users, zerolog.Nop())
	alice := seedUser(t, users, "alice")

	created, err := svc.Create(context.Background(), ports.CreateStoryInput{
		Title:    "First",
		Content:  "hello",
		AuthorID: alice.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Author.Username != "alice" {
		t.Fatalf("author not resolved: %+v", created.Author)
	}
	if created.Likes == nil || len(created.Likes) != 0 {
		t.Fatalf("expected empty like set, got %v", created.Likes)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "First" || got.Author.ID != alice.ID {
		t.Fatalf("unexpected story: %+v", got)
	}
}

func TestStoryService_Create_Validation(t *testing.T) {
	users := newStubUserRepo()
	svc := NewStoryService(newStubStoryRepo(), users, zerolog.Nop())
	alice := seedUser(t, users, "alice")

	for _, in := range []ports.CreateStoryInput{
		{Title: "", Content: "body", AuthorID: alice.ID},
		{Title: "t", Content: "", AuthorID: alice.ID},
	} {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
		}
	}
}

func TestStoryService_List_NewestFirst(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewStoryService(stories, users, zerolog.Nop())
	alice := seedUser(t, users, "alice")

	now := time.Now().UTC()
	for i, title := range []string{"oldest", "middle", "newest"} {
		_, err := stories.Create(context.Background(), &domain.Story{
			Title:     title,
			Content:   "body",
			AuthorID:  alice.ID,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed story: %v", err)
		}
	}

	views, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 stories, got %d", len(views))
	}
	if views[0].Title != "newest" || views[2].Title != "oldest" {
		t.Fatalf("wrong order: %s, %s, %s", views[0].Title, views[1].Title, views[2].Title)
	}
	for _, v := range views {
		if v.Author.Username != "alice" {
			t.Fatalf("author not resolved on %s", v.Title)
		}
	}
}

func TestStoryService_Update_OwnershipAndPartial(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewStoryService(stories, users, zerolog.Nop())
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	created, err := svc.Create(context.Background(), ports.CreateStoryInput{Title: "Title", Content: "Content", AuthorID: alice.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newTitle := "Updated"
	if _, err := svc.Update(context.Background(), ports.UpdateStoryInput{
		StoryID:     created.ID,
		RequesterID: bob.ID,
		Title:       &newTitle,
	}); !errors.Is(err, domain.ErrNotStoryAuthor) {
		t.Fatalf("expected ErrNotStoryAuthor, got %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateStoryInput{
		StoryID:     created.ID,
		RequesterID: alice.ID,
		Title:       &newTitle,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Updated" {
		t.Fatalf("title not updated: %s", updated.Title)
	}
	if updated.Content != "Content" {
		t.Fatalf("omitted content should be retained, got %s", updated.Content)
	}

	if _, err := svc.Update(context.Background(), ports.UpdateStoryInput{
		StoryID:     "missing",
		RequesterID: alice.ID,
	}); !errors.Is(err, domain.ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}

func TestStoryService_Update_BlankFieldRetained(t *testing.T) {
	users := newStubUserRepo()
	svc := NewStoryService(newStubStoryRepo(), users, zerolog.Nop())
	alice := seedUser(t, users, "alice")

	created, err := svc.Create(context.Background(), ports.CreateStoryInput{Title: "Keep", Content: "body", AuthorID: alice.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	blank := "  "
	updated, err := svc.Update(context.Background(), ports.UpdateStoryInput{
		StoryID:     created.ID,
		RequesterID: alice.ID,
		Title:       &blank,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Keep" {
		t.Fatalf("blank title should keep stored value, got %q", updated.Title)
	}
}

func TestStoryService_Delete_Ownership(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewStoryService(stories, users, zerolog.Nop())
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	created, err := svc.Create(context.Background(), ports.CreateStoryInput{Title: "t", Content: "c", AuthorID: alice.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, bob.ID); !errors.Is(err, domain.ErrNotStoryAuthor) {
		t.Fatalf("expected ErrNotStoryAuthor, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, alice.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, alice.ID); !errors.Is(err, domain.ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound after delete, got %v", err)
	}
}

func TestStoryService_ToggleLike_IdempotentPair(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewStoryService(stories, users, zerolog.Nop())
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	created, err := svc.Create(context.Background(), ports.CreateStoryInput{Title: "t", Content: "c", AuthorID: alice.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	liked, err := svc.ToggleLike(context.Background(), created.ID, bob.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(liked.Likes) != 1 || liked.Likes[0] != bob.ID {
		t.Fatalf("expected likes [%s], got %v", bob.ID, liked.Likes)
	}

	unliked, err := svc.ToggleLike(context.Background(), created.ID, bob.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if len(unliked.Likes) != 0 {
		t.Fatalf("expected empty likes after double toggle, got %v", unliked.Likes)
	}

	if _, err := svc.ToggleLike(context.Background(), "missing", bob.ID); !errors.Is(err, domain.ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}
