package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/core/domain"
	"github.com/gaeliza/match-system/internal/core/ports"
)

// ScoreReader abstracts the live scoreboard store (Redis).
type ScoreReader interface {
	TeamScore(ctx context.Context, matchID, teamID string) (goals, points int64, err error)
}

type MatchService struct {
	repo   ports.MatchRepository
	teams  ports.TeamRepository
	scores ScoreReader
	log    zerolog.Logger
}

func NewMatchService(repo ports.MatchRepository, teams ports.TeamRepository, scores ScoreReader, log zerolog.Logger) *MatchService {
	return &MatchService{repo: repo, teams: teams, scores: scores, log: log}
}

// Create schedules a match. Both teams must exist.
func (s *MatchService) Create(ctx context.Context, input ports.CreateMatchInput) (*domain.Match, error) {
	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		if _, err := s.teams.FindByID(ctx, teamID); err != nil {
			return nil, err
		}
	}

	match := &domain.Match{
		ID:          uuid.NewString(),
		HomeTeamID:  input.HomeTeamID,
		AwayTeamID:  input.AwayTeamID,
		MatchDate:   input.MatchDate,
		Location:    input.Location,
		Competition: input.Competition,
		VideoURL:    input.VideoURL,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, match); err != nil {
		s.log.Error().Err(err).Msg("failed to create match")
		return nil, err
	}

	s.log.Info().Str("match_id", match.ID).Str("created_by", match.CreatedBy).Msg("match created")
	return match, nil
}

func (s *MatchService) Get(ctx context.Context, id string) (*domain.Match, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MatchService) List(ctx context.Context) ([]*domain.Match, error) {
	return s.repo.List(ctx)
}

// Update replaces the mutable fields of a match. Zero-valued inputs keep the
// stored value.
func (s *MatchService) Update(ctx context.Context, id string, input ports.UpdateMatchInput) (*domain.Match, error) {
	match, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !input.MatchDate.IsZero() {
		match.MatchDate = input.MatchDate
	}
	if input.Location != "" {
		match.Location = input.Location
	}
	if input.Competition != "" {
		match.Competition = input.Competition
	}
	if input.VideoURL != "" {
		match.VideoURL = input.VideoURL
	}

	if err := s.repo.Update(ctx, match); err != nil {
		s.log.Error().Err(err).Str("match_id", id).Msg("failed to update match")
		return nil, err
	}
	return match, nil
}

func (s *MatchService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Summary reads the live scoreboard for both sides of a match. A match with
// no scoring actions yet reports zeros.
func (s *MatchService) Summary(ctx context.Context, id string) (*domain.MatchSummary, error) {
	match, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &domain.MatchSummary{MatchID: match.ID}

	homeGoals, homePoints, err := s.scores.TeamScore(ctx, match.ID, match.HomeTeamID)
	if err != nil {
		return nil, err
	}
	awayGoals, awayPoints, err := s.scores.TeamScore(ctx, match.ID, match.AwayTeamID)
	if err != nil {
		return nil, err
	}

	summary.Home = teamScore(homeGoals, homePoints)
	summary.Away = teamScore(awayGoals, awayPoints)
	return summary, nil
}

func teamScore(goals, points int64) domain.TeamScore {
	return domain.TeamScore{
		Goals:  goals,
		Points: points,
		Total:  goals*int64(domain.ActionGoal.ScoreValue()) + points,
	}
}
