package ports

import (
	"context"

	"github.com/memento-app/memento-api/internal/core/domain"
)

// SignupInput carries the fields required to create an account. Fields are
// normalized by the service (trimming, email lowercasing) before persistence.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// TokenService issues and verifies the bearer credentials used by the API.
type TokenService interface {
	// Issue produces a signed token embedding userID.
	Issue(userID string) (string, error)
	// Verify returns the embedded user ID, or domain.ErrInvalidToken when the
	// signature, structure, or expiry check fails.
	Verify(raw string) (string, error)
}

// AuthService implements signup and login use-cases.
type AuthService interface {
	// Signup creates the account and returns it with a freshly issued token.
	Signup(ctx context.Context, in SignupInput) (*domain.User, string, error)
	// Login authenticates by email and password. Unknown email and wrong
	// password are indistinguishable: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
