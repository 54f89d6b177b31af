package ports

import (
	"context"

	"github.com/memento-app/memento-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Uniqueness of email
// and username is enforced by the store; Create surfaces violations as
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindManyByID returns the users for the given IDs keyed by ID. Missing
	// IDs are simply absent from the result.
	FindManyByID(ctx context.Context, ids []string) (map[string]*domain.User, error)
}
