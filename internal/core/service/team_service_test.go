package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/core/domain"
	"github.com/gaeliza/match-system/internal/core/ports"
)

func TestTeamService_Create_DefaultsToTemporary(t *testing.T) {
	repo := newStubTeamRepo()
	svc := NewTeamService(repo, zerolog.Nop())

	team, err := svc.Create(context.Background(), ports.CreateTeamInput{
		Name:      "Naomh Aodán",
		CreatedBy: "user_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if team.Type != domain.TeamTemporary {
		t.Fatalf("expected default type %q, got %q", domain.TeamTemporary, team.Type)
	}
	if team.ID == "" || team.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be set: %+v", team)
	}
}

func TestTeamService_Create_ExplicitType(t *testing.T) {
	svc := NewTeamService(newStubTeamRepo(), zerolog.Nop())

	team, err := svc.Create(context.Background(), ports.CreateTeamInput{
		Name: "An Ghaeltacht",
		Type: "oficial",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if team.Type != domain.TeamOfficial {
		t.Fatalf("expected type %q, got %q", domain.TeamOfficial, team.Type)
	}
}
