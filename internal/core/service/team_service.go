package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/core/domain"
	"github.com/gaeliza/match-system/internal/core/ports"
)

type TeamService struct {
	repo   ports.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(repo ports.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

// Create persists a new team. Teams without an explicit type are temporary:
// throwaway opponents created while logging a single match.
func (s *TeamService) Create(ctx context.Context, input ports.CreateTeamInput) (*domain.Team, error) {
	teamType := domain.TeamType(input.Type)
	if teamType == "" {
		teamType = domain.TeamTemporary
	}

	team := &domain.Team{
		ID:        uuid.NewString(),
		Name:      input.Name,
		ShieldURL: input.ShieldURL,
		Type:      teamType,
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, team); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create team")
		return nil, err
	}

	s.logger.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")
	return team, nil
}

func (s *TeamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.repo.List(ctx)
}
