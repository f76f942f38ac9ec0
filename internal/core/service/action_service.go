package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/api/metrics"
	"github.com/gaeliza/match-system/internal/core/domain"
	"github.com/gaeliza/match-system/internal/core/ports"
)

// ScoreEnqueuer hands scoring actions to the scoreboard pipeline without
// blocking the request.
type ScoreEnqueuer interface {
	Enqueue(event ports.ScoreEvent)
}

type ActionService struct {
	repo    ports.ActionRepository
	matches ports.MatchRepository
	scores  ScoreEnqueuer
	log     zerolog.Logger
}

func NewActionService(repo ports.ActionRepository, matches ports.MatchRepository, scores ScoreEnqueuer, log zerolog.Logger) *ActionService {
	return &ActionService{repo: repo, matches: matches, scores: scores, log: log}
}

// Record persists an in-match action. Scoring actions attributed to a team
// are additionally fanned out to the live scoreboard.
func (s *ActionService) Record(ctx context.Context, input ports.RecordActionInput) (*domain.Action, error) {
	if _, err := s.matches.FindByID(ctx, input.MatchID); err != nil {
		return nil, err
	}

	action := &domain.Action{
		ID:          uuid.NewString(),
		MatchID:     input.MatchID,
		PlayerID:    input.PlayerID,
		TeamID:      input.TeamID,
		Type:        domain.ActionType(input.Type),
		Minute:      input.Minute,
		Second:      input.Second,
		XPosition:   input.XPosition,
		YPosition:   input.YPosition,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, action); err != nil {
		s.log.Error().Err(err).Str("match_id", input.MatchID).Msg("failed to record action")
		return nil, err
	}

	metrics.ActionsRecordedTotal.WithLabelValues(string(action.Type)).Inc()

	if action.Type.IsScoring() && action.TeamID != "" {
		s.scores.Enqueue(ports.ScoreEvent{
			MatchID: action.MatchID,
			TeamID:  action.TeamID,
			Type:    action.Type,
		})
	}

	s.log.Info().
		Str("match_id", action.MatchID).
		Str("type", string(action.Type)).
		Int("minute", action.Minute).
		Msg("action recorded")

	return action, nil
}

func (s *ActionService) ListByMatch(ctx context.Context, matchID string) ([]*domain.Action, error) {
	if _, err := s.matches.FindByID(ctx, matchID); err != nil {
		return nil, err
	}
	return s.repo.ListByMatch(ctx, matchID)
}
