package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// MatchRepository defines persistence operations for matches.
type MatchRepository interface {
	Insert(ctx context.Context, match *domain.Match) error
	FindByID(ctx context.Context, id string) (*domain.Match, error)
	List(ctx context.Context) ([]*domain.Match, error)
	Update(ctx context.Context, match *domain.Match) error
	Delete(ctx context.Context, id string) error
}
