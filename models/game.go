package models

// Game represents one day's puzzle in a channel
type Game struct {
	ID           int64  `db:"id"`
	ChannelID    string `db:"channel_id"`
	ThreadID     string `db:"thread_id"`
	PuzzleNumber int    `db:"puzzle_number"`
	Date         string `db:"date"`
	Active       bool   `db:"active"`
	Secret       string `db:"secret"`
}

// IsSecret checks whether a guessed word is the game's secret
func (g *Game) IsSecret(word string) bool {
	return word == g.Secret
}
