package domain

import (
	"errors"
	"time"
)

var ErrPlayerNotFound = errors.New("player not found")

// Player belongs to at most one team. Number is the shirt number; zero means
// unassigned.
type Player struct {
	ID        string    `json:"id" bson:"_id"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Number    int       `json:"number,omitempty" bson:"number,omitempty"`
	TeamID    string    `json:"team_id,omitempty" bson:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
