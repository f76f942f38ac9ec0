package domain

import (
	"errors"
	"time"
)

// ActionType identifies the kind of in-match event being recorded.
type ActionType string

const (
	ActionGoal       ActionType = "goal"
	ActionPoint      ActionType = "point"
	ActionMissedShot ActionType = "missed_shot"
	ActionFoul       ActionType = "foul"
	ActionPenalty    ActionType = "penalty"
	ActionYellowCard ActionType = "yellow_card"
	ActionBlackCard  ActionType = "black_card"
	ActionRedCard    ActionType = "red_card"
)

var ErrActionNotFound = errors.New("action not found")

// ScoreValue returns the points a scoring action is worth on the scoreboard.
// Gaelic scoring: a goal is worth three points, a point one. Every other
// action type scores zero.
func (t ActionType) ScoreValue() int {
	switch t {
	case ActionGoal:
		return 3
	case ActionPoint:
		return 1
	default:
		return 0
	}
}

// IsScoring reports whether the action changes the scoreboard.
func (t ActionType) IsScoring() bool {
	return t.ScoreValue() > 0
}

// Action is a single in-match event: a shot, a card, a foul. Pitch
// coordinates are percentages (0-100) of the pitch dimensions.
type Action struct {
	ID          string     `json:"id" bson:"_id"`
	MatchID     string     `json:"match_id" bson:"match_id"`
	PlayerID    string     `json:"player_id,omitempty" bson:"player_id,omitempty"`
	TeamID      string     `json:"team_id,omitempty" bson:"team_id,omitempty"`
	Type        ActionType `json:"type" bson:"type"`
	Minute      int        `json:"minute" bson:"minute"`
	Second      int        `json:"second" bson:"second"`
	XPosition   float64    `json:"x_position,omitempty" bson:"x_position,omitempty"`
	YPosition   float64    `json:"y_position,omitempty" bson:"y_position,omitempty"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}
