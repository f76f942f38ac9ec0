package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gaeliza/match-system/internal/core/domain"
	"github.com/gaeliza/match-system/internal/core/ports"
)

// Scoreboards older than this are dropped; the durable action log in Mongo
// remains the source of truth for finished matches.
const scoreboardTTL = 24 * time.Hour

// Scoreboard keeps the live per-team goal/point tally of a match in a Redis
// hash. Key format: score:<match_id>, fields <team_id>:goal / <team_id>:point.
type Scoreboard struct {
	client *redis.Client
}

// NewScoreboard creates a Scoreboard wrapping the given Redis client.
func NewScoreboard(client *redis.Client) *Scoreboard {
	return &Scoreboard{client: client}
}

// Apply increments the tally for one scoring action.
func (s *Scoreboard) Apply(ctx context.Context, event ports.ScoreEvent) error {
	key := s.key(event.MatchID)
	field := s.field(event.TeamID, event.Type)

	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, field, 1)
	pipe.Expire(ctx, key, scoreboardTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("scoreboard apply: %w", err)
	}
	return nil
}

// TeamScore reads the current tally for one side. Missing fields read as zero.
func (s *Scoreboard) TeamScore(ctx context.Context, matchID, teamID string) (goals, points int64, err error) {
	vals, err := s.client.HMGet(ctx, s.key(matchID),
		s.field(teamID, domain.ActionGoal),
		s.field(teamID, domain.ActionPoint),
	).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("scoreboard read: %w", err)
	}

	return toCount(vals[0]), toCount(vals[1]), nil
}

func (s *Scoreboard) key(matchID string) string {
	return "score:" + matchID
}

func (s *Scoreboard) field(teamID string, t domain.ActionType) string {
	return fmt.Sprintf("%s:%s", teamID, t)
}

func toCount(v any) int64 {
	str, ok := v.(string)
	if !ok {
		return 0
	}
	var n int64
	_, _ = fmt.Sscanf(str, "%d", &n)
	return n
}
