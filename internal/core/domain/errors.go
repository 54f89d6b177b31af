package domain

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrStoryNotFound      = errors.New("story not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrNotStoryAuthor     = errors.New("not the story author")
	ErrNotCommentAuthor   = errors.New("not the comment author")
)
