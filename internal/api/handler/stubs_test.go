package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/memento-app/memento-api/internal/api"
	"github.com/memento-app/memento-api/internal/api/handler"
	"github.com/memento-app/memento-api/internal/api/middleware"
	"github.com/memento-app/memento-api/internal/core/domain"
	"github.com/memento-app/memento-api/internal/core/ports"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asUser(c echo.Context, user *domain.User) {
	c.Set(middleware.UserContextKey, user)
}

var testUser = &domain.User{
	ID:       "user-1",
	Username: "alice",
	Email:    "alice@example.com",
}

// stubAuthService returns canned results for signup and login.
type stubAuthService struct {
	user  *domain.User
	token string
	err   error
}

func (s *stubAuthService) Signup(_ context.Context, in ports.SignupInput) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

// stubStoryService records calls and returns canned views.
type stubStoryService struct {
	views []*ports.StoryView
	view  *ports.StoryView
	err   error

	lastCreate ports.CreateStoryInput
	lastUpdate ports.UpdateStoryInput
	deletedID  string
	toggledID  string
}

func (s *stubStoryService) List(_ context.Context) ([]*ports.StoryView, error) {
	return s.views, s.err
}

func (s *stubStoryService) Get(_ context.Context, id string) (*ports.StoryView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubStoryService) Create(_ context.Context, in ports.CreateStoryInput) (*ports.StoryView, error) {
	s.lastCreate = in
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubStoryService) Update(_ context.Context, in ports.UpdateStoryInput) (*ports.StoryView, error) {
	s.lastUpdate = in
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubStoryService) Delete(_ context.Context, storyID, requesterID string) error {
	s.deletedID = storyID
	return s.err
}

func (s *stubStoryService) ToggleLike(_ context.Context, storyID, requesterID string) (*ports.StoryView, error) {
	s.toggledID = storyID
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

// stubCommentService records calls and returns canned views.
type stubCommentService struct {
	views []*ports.CommentView
	view  *ports.CommentView
	err   error

	lastCreate ports.CreateCommentInput
	deletedID  string
}

func (s *stubCommentService) ListForStory(_ context.Context, storyID string) ([]*ports.CommentView, error) {
	return s.views, s.err
}

func (s *stubCommentService) Create(_ context.Context, in ports.CreateCommentInput) (*ports.CommentView, error) {
	s.lastCreate = in
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubCommentService) Delete(_ context.Context, commentID, requesterID string) error {
	s.deletedID = commentID
	return s.err
}

func sampleStoryView() *ports.StoryView {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &ports.StoryView{
		ID:      "story-1",
		Title:   "First",
		Content: "hello",
		Author: ports.AuthorView{
			ID:       testUser.ID,
			Username: testUser.Username,
		},
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func sampleCommentView() *ports.CommentView {
	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	return &ports.CommentView{
		ID:      "comment-1",
		Content: "nice one",
		Author: ports.AuthorView{
			ID:       testUser.ID,
			Username: testUser.Username,
		},
		StoryID:   "story-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
