package domain

import (
	"errors"
	"time"
)

// TeamType distinguishes permanent club teams from one-off opponents created
// for a single match.
type TeamType string

const (
	TeamOfficial  TeamType = "oficial"
	TeamTemporary TeamType = "temporal"
)

var ErrTeamNotFound = errors.New("team not found")

// Team is a side that can appear in a match.
type Team struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	ShieldURL string    `json:"shield_url,omitempty" bson:"shield_url,omitempty"`
	Type      TeamType  `json:"type" bson:"type"`
	CreatedBy string    `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
