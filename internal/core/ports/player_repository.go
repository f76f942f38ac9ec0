package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// PlayerRepository defines persistence operations for players.
type PlayerRepository interface {
	Insert(ctx context.Context, player *domain.Player) error
	FindByID(ctx context.Context, id string) (*domain.Player, error)
	// List returns all players, optionally filtered by team when teamID is
	// non-empty.
	List(ctx context.Context, teamID string) ([]*domain.Player, error)
}
