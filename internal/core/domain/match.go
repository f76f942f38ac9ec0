package domain

import (
	"errors"
	"time"
)

var ErrMatchNotFound = errors.New("match not found")

// Match is a scheduled or recorded game between two teams.
type Match struct {
	ID          string    `json:"id" bson:"_id"`
	HomeTeamID  string    `json:"home_team_id" bson:"home_team_id"`
	AwayTeamID  string    `json:"away_team_id" bson:"away_team_id"`
	MatchDate   time.Time `json:"match_date" bson:"match_date"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	Competition string    `json:"competition,omitempty" bson:"competition,omitempty"`
	VideoURL    string    `json:"video_url,omitempty" bson:"video_url,omitempty"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// TeamScore is the running tally for one side of a match.
type TeamScore struct {
	Goals  int64 `json:"goals"`
	Points int64 `json:"points"`
	Total  int64 `json:"total"`
}

// MatchSummary pairs a match with the scoreboard tallies for both sides.
type MatchSummary struct {
	MatchID string    `json:"match_id"`
	Home    TeamScore `json:"home"`
	Away    TeamScore `json:"away"`
}
