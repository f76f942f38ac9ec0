package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// AuthService defines the authentication use cases.
type AuthService interface {
	// Register creates a new account. The returned user carries no usable
	// password material (the hash is excluded from serialization).
	Register(ctx context.Context, email, password, username string) (*domain.User, error)
	// Login verifies credentials and issues a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves a bearer token to the account it was issued for.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
