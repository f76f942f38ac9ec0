package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// UserRepository is the credential store the auth service depends on. Lookups
// return domain.ErrUserNotFound when no record matches. Insert surfaces
// unique-index violations as domain.ErrUsernameTaken or domain.ErrEmailTaken
// rather than overwriting.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
