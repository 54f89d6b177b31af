package handler

import "time"

// messageResponse is the standard confirmation/error envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// --- Stories ---

type createStoryRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updateStoryRequest carries a partial update; absent fields keep their
// stored value.
type updateStoryRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type authorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type storyResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    authorResponse `json:"author"`
	Likes     []string       `json:"likes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// --- Comments ---

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type commentResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Author    authorResponse `json:"author"`
	Story     string         `json:"story"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
