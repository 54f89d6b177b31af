package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memento-app/memento-api/internal/api/middleware"
	"github.com/memento-app/memento-api/internal/core/domain"
)

// currentUser extracts the identity resolved by the auth middleware and
// fast-fails before any service call. A missing identity on a private route
// means the route was wired without the gate; reject rather than forward a
// nil user.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token")
	}
	return user, nil
}
