package models

// Channel represents a channel subscribed to the daily puzzle
type Channel struct {
	ID     string `db:"id"`
	TeamID string `db:"team_id"`
	// Hour of day (UTC) to post the daily puzzle
	Hour   int  `db:"hour"`
	Active bool `db:"active"`
}
