package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// TeamRepository defines persistence operations for teams.
type TeamRepository interface {
	Insert(ctx context.Context, team *domain.Team) error
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
}
