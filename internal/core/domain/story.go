package domain

import "time"

// Story is a short post owned by its author. Likes is the set of user IDs
// that currently like the story; order carries no meaning.
type Story struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	Likes     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikedBy reports whether userID is a member of the like set.
func (s *Story) LikedBy(userID string) bool {
	for _, id := range s.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
