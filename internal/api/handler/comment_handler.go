package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memento-app/memento-api/internal/api/metrics"
	"github.com/memento-app/memento-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListForStory returns all comments on a story newest-first.
//
// @Summary      List comments on a story
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Story ID"
// @Success      200  {array}   commentResponse
// @Router       /stories/{id}/comments [get]
func (h *CommentHandler) ListForStory(c echo.Context) error {
	views, err := h.service.ListForStory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentListResponse(views))
}

// Create posts a comment on an existing story.
//
// @Summary      Comment on a story
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Story ID"
// @Param        body  body      createCommentRequest  true  "Comment fields"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /stories/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
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

	view, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		StoryID:  c.Param("id"),
		Content:  req.Content,
		AuthorID: user.ID,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCommentResponse(view))
}

// Delete removes a comment owned by the requester.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Comment deleted"})
}
