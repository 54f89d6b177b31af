package domain

import "time"

// Comment belongs to both a story and an author. Deleting a story does not
// cascade to its comments; orphaned comments are tolerated and inert.
type Comment struct {
	ID        string
	Content   string
	AuthorID  string
	StoryID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
