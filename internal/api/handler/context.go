package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// userContextKey is where the auth middleware stores the resolved account.
const userContextKey = "current_user"

// currentUser extracts the authenticated account injected by the auth
// middleware. Its absence means the route was registered without the
// middleware; reject rather than proceed unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
