package handler

import (
	"github.com/memento-app/memento-api/internal/core/domain"
	"github.com/memento-app/memento-api/internal/core/ports"
)

// --- Service views → HTTP responses ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toStoryResponse(v *ports.StoryView) storyResponse {
	likes := v.Likes
	if likes == nil {
		likes = []string{}
	}
	return storyResponse{
		ID:      v.ID,
		Title:   v.Title,
		Content: v.Content,
		Author: authorResponse{
			ID:       v.Author.ID,
			Username: v.Author.Username,
		},
		Likes:     likes,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
	}
}

func toStoryListResponse(views []*ports.StoryView) []storyResponse {
	out := make([]storyResponse, len(views))
	for i, v := range views {
		out[i] = toStoryResponse(v)
	}
	return out
}

func toCommentResponse(v *ports.CommentView) commentResponse {
	return commentResponse{
		ID:      v.ID,
		Content: v.Content,
		Author: authorResponse{
			ID:       v.Author.ID,
			Username: v.Author.Username,
		},
		Story:     v.StoryID,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
	}
}

func toCommentListResponse(views []*ports.CommentView) []commentResponse {
	out := make([]commentResponse, len(views))
	for i, v := range views {
		out[i] = toCommentResponse(v)
	}
	return out
}
