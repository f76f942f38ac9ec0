package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/core/domain"
	"github.com/gaeliza/match-system/internal/core/ports"
)

type PlayerService struct {
	repo  ports.PlayerRepository
	teams ports.TeamRepository
	log   zerolog.Logger
}

func NewPlayerService(repo ports.PlayerRepository, teams ports.TeamRepository, log zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, teams: teams, log: log}
}

// Create registers a player. When a team is given it must exist.
func (s *PlayerService) Create(ctx context.Context, input ports.CreatePlayerInput) (*domain.Player, error) {
	if input.TeamID != "" {
		if _, err := s.teams.FindByID(ctx, input.TeamID); err != nil {
			if errors.Is(err, domain.ErrTeamNotFound) {
				return nil, domain.ErrTeamNotFound
			}
			return nil, err
		}
	}

	player := &domain.Player{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Number:    input.Number,
		TeamID:    input.TeamID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, player); err != nil {
		s.log.Error().Err(err).Msg("failed to create player")
		return nil, err
	}

	s.log.Info().Str("player_id", player.ID).Str("team_id", player.TeamID).Msg("player created")
	return player, nil
}

func (s *PlayerService) List(ctx context.Context, teamID string) ([]*domain.Player, error) {
	return s.repo.List(ctx, teamID)
}
