package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// CreateTeamInput carries the data needed to create a team.
type CreateTeamInput struct {
	Name      string
	ShieldURL string
	Type      string // "oficial" or "temporal"; defaults to "temporal"
	CreatedBy string
}

// TeamService defines use-case operations for teams.
type TeamService interface {
	Create(ctx context.Context, input CreateTeamInput) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
}
