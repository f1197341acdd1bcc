package models

// User represents a chat platform user seen by the bot
type User struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	ProfilePhoto string `db:"profile_photo"`
}
