package ports

import (
	"context"
	"time"

	"github.com/gaeliza/match-system/internal/core/domain"
)

// CreateMatchInput carries the data needed to schedule a match.
type CreateMatchInput struct {
	HomeTeamID  string
	AwayTeamID  string
	MatchDate   time.Time
	Location    string
	Competition string
	VideoURL    string
	CreatedBy   string
}

// UpdateMatchInput carries the mutable fields of a match. Zero values leave
// the stored value untouched.
type UpdateMatchInput struct {
	MatchDate   time.Time
	Location    string
	Competition string
	VideoURL    string
}

// MatchService defines use-case operations for matches.
type MatchService interface {
	Create(ctx context.Context, input CreateMatchInput) (*domain.Match, error)
	Get(ctx context.Context, id string) (*domain.Match, error)
	List(ctx context.Context) ([]*domain.Match, error)
	Update(ctx context.Context, id string, input UpdateMatchInput) (*domain.Match, error)
	Delete(ctx context.Context, id string) error
	// Summary returns the live scoreboard for both sides of a match.
	Summary(ctx context.Context, id string) (*domain.MatchSummary, error)
}
