package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/core/domain"
	"github.com/gaeliza/match-system/internal/core/ports"
)

type stubTeamRepo struct {
	teams map[string]*domain.Team
}

func newStubTeamRepo(ids ...string) *stubTeamRepo {
	r := &stubTeamRepo{teams: make(map[string]*domain.Team)}
	for _, id := range ids {
		r.teams[id] = &domain.Team{ID: id, Name: id, Type: domain.TeamOfficial}
	}
	return r
}

func (r *stubTeamRepo) Insert(_ context.Context, t *domain.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *stubTeamRepo) FindByID(_ context.Context, id string) (*domain.Team, error) {
	if t, ok := r.teams[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTeamNotFound
}

func (r *stubTeamRepo) List(_ context.Context) ([]*domain.Team, error) {
	var out []*domain.Team
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

// stubScores returns fixed tallies per team id.
type stubScores struct {
	goals  map[string]int64
	points map[string]int64
}

func (s *stubScores) TeamScore(_ context.Context, _, teamID string) (int64, int64, error) {
	return s.goals[teamID], s.points[teamID], nil
}

func TestMatchService_Create_Success(t *testing.T) {
	matches := newStubMatchRepo()
	svc := NewMatchService(matches, newStubTeamRepo("team_home", "team_away"), &stubScores{}, zerolog.Nop())

	match, err := svc.Create(context.Background(), ports.CreateMatchInput{
		HomeTeamID: "team_home",
		AwayTeamID: "team_away",
		MatchDate:  time.Date(2026, 5, 10, 17, 0, 0, 0, time.UTC),
		CreatedBy:  "user_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if match.ID == "" {
		t.Fatalf("expected generated id")
	}
	if match.CreatedBy != "user_1" {
		t.Fatalf("expected created_by to be set, got %q", match.CreatedBy)
	}
	if _, ok := matches.matches[match.ID]; !ok {
		t.Fatalf("match not persisted")
	}
}

func TestMatchService_Create_UnknownTeam(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), newStubTeamRepo("team_home"), &stubScores{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateMatchInput{
		HomeTeamID: "team_home",
		AwayTeamID: "ghost",
		MatchDate:  time.Now(),
	})
	if !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestMatchService_Update_PartialFields(t *testing.T) {
	existing := testMatch("m1")
	existing.Location = "Old Ground"
	existing.Competition = "League"
	matches := newStubMatchRepo(existing)
	svc := NewMatchService(matches, newStubTeamRepo(), &stubScores{}, zerolog.Nop())

	updated, err := svc.Update(context.Background(), "m1", ports.UpdateMatchInput{
		Location: "New Ground",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Location != "New Ground" {
		t.Fatalf("location not updated: %q", updated.Location)
	}
	if updated.Competition != "League" {
		t.Fatalf("competition should be untouched, got %q", updated.Competition)
	}
}

func TestMatchService_Update_UnknownMatch(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), newStubTeamRepo(), &stubScores{}, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateMatchInput{}); !errors.Is(err, domain.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestMatchService_Delete_UnknownMatch(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), newStubTeamRepo(), &stubScores{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestMatchService_Summary(t *testing.T) {
	matches := newStubMatchRepo(testMatch("m1"))
	scores := &stubScores{
		goals:  map[string]int64{"team_home": 2, "team_away": 0},
		points: map[string]int64{"team_home": 5, "team_away": 11},
	}
	svc := NewMatchService(matches, newStubTeamRepo(), scores, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	// Gaelic totals: goals are worth three.
	if summary.Home.Goals != 2 || summary.Home.Points != 5 || summary.Home.Total != 11 {
		t.Fatalf("unexpected home score: %+v", summary.Home)
	}
	if summary.Away.Goals != 0 || summary.Away.Points != 11 || summary.Away.Total != 11 {
		t.Fatalf("unexpected away score: %+v", summary.Away)
	}
}

func TestMatchService_Summary_UnknownMatch(t *testing.T) {
	svc := NewMatchService(newStubMatchRepo(), newStubTeamRepo(), &stubScores{}, zerolog.Nop())

	if _, err := svc.Summary(context.Background(), "missing"); !errors.Is(err, domain.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}
