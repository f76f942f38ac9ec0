package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// CreatePlayerInput carries the data needed to register a player.
type CreatePlayerInput struct {
	FirstName string
	LastName  string
	Number    int
	TeamID    string
}

// PlayerService defines use-case operations for players.
type PlayerService interface {
	Create(ctx context.Context, input CreatePlayerInput) (*domain.Player, error)
	List(ctx context.Context, teamID string) ([]*domain.Player, error)
}
