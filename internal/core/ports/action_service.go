package ports

import (
	"context"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// RecordActionInput carries the data for a single in-match event.
type RecordActionInput struct {
	MatchID     string
	PlayerID    string
	TeamID      string
	Type        string
	Minute      int
	Second      int
	XPosition   float64
	YPosition   float64
	Description string
}

// ScoreEvent is the projection of a scoring action handed to the scoreboard
// pipeline. TeamID is always non-empty.
type ScoreEvent struct {
	MatchID string
	TeamID  string
	Type    domain.ActionType
}

// ActionService defines use-case operations for actions.
type ActionService interface {
	Record(ctx context.Context, input RecordActionInput) (*domain.Action, error)
	ListByMatch(ctx context.Context, matchID string) ([]*domain.Action, error)
}
