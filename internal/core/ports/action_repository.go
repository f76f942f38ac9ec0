package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// ActionRepository defines persistence operations for in-match actions.
type ActionRepository interface {
	Insert(ctx context.Context, action *domain.Action) error
	// ListByMatch returns a match's actions ordered by minute and second.
	ListByMatch(ctx context.Context, matchID string) ([]*domain.Action, error)
}
