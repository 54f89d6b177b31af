package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memento-app/memento-api/internal/api/metrics"
	"github.com/memento-app/memento-api/internal/core/ports"
)

// StoryHandler handles HTTP requests for story operations.
type StoryHandler struct {
	service ports.StoryService
}

func NewStoryHandler(service ports.StoryService) *StoryHandler {
	return &StoryHandler{service: service}
}

// List returns every story newest-first.
//
// @Summary      List all stories
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   storyResponse
// @Failure      401  {object}  messageResponse
// @Router       /stories [get]
func (h *StoryHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoryListResponse(views))
}

// Get returns a single story by ID.
//
// @Summary      Get a story
// @Tags         stories
// @Produce      json
// @Param        id   path      string  true  "Story ID"
// @Success      200  {object}  storyResponse
// @Failure      404  {object}  messageResponse
// @Router       /stories/{id} [get]
func (h *StoryHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoryResponse(view))
}

// Create publishes a new story authored by the requester.
//
// @Summary      Create a story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoryRequest  true  "Story fields"
// @Success      201   {object}  storyResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /stories [post]
func (h *StoryHandler) Create(c echo.Context) error {
	var req createStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateStoryInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: user.ID,
	})
	if err != nil {
		return err
	}

	metrics.StoriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toStoryResponse(view))
}

// Update replaces the supplied fields of a story owned by the requester.
//
// @Summary      Update a story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Story ID"
// @Param        body  body      updateStoryRequest  true  "Fields to replace"
// @Success      200   {object}  storyResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /stories/{id} [put]
func (h *StoryHandler) Update(c echo.Context) error {
	var req updateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.Update(c.Request().Context(), ports.UpdateStoryInput{
		StoryID:     c.Param("id"),
		RequesterID: user.ID,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStoryResponse(view))
}

// Delete removes a story owned by the requester.
//
// @Summary      Delete a story
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Story ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /stories/{id} [delete]
func (h *StoryHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Story deleted"})
}

// ToggleLike flips the requester's like on a story.
//
// @Summary      Like or unlike a story
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Story ID"
// @Success      200  {object}  storyResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /stories/{id}/like [put]
func (h *StoryHandler) ToggleLike(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.ToggleLike(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}

	action := "unlike"
	if likedBy(view.Likes, user.ID) {
		action = "like"
	}
	metrics.LikesToggledTotal.WithLabelValues(action).Inc()

	return c.JSON(http.StatusOK, toStoryResponse(view))
}

func likedBy(likes []string, userID string) bool {
	for _, id := range likes {
		if id == userID {
			return true
		}
	}
	return false
}
