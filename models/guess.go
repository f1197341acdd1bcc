package models

// Guess represents one guessed word in a game, unique per (game, word)
type Guess struct {
	ID     int64 `db:"id"`
	GameID int64 `db:"game_id"`

	// Milliseconds since the puzzle base date, only used for ordering
	// guesses in a game
	Updated int64 `db:"updated"`

	// UserID is the user who first guessed the word; LatestGuessUserID is
	// whoever submitted it most recently
	UserID            string `db:"user_id"`
	LatestGuessUserID string `db:"latest_guess_user_id"`

	Word       string  `db:"word"`
	Percentile int     `db:"percentile"`
	Similarity float64 `db:"similarity"`
	Idx        int     `db:"idx"`
}

// InTopRange checks if the guess placed within the secret's precomputed
// neighbor set. A zero percentile means the guess was outside it.
func (g *Guess) InTopRange() bool {
	return g.Percentile > 0
}
