package models

// GameHintSeeker records that a user requested a hint in a game, and how
// many guesses had been made when they did.
type GameHintSeeker struct {
	GameID   int64  `db:"game_id"`
	UserID   string `db:"user_id"`
	GuessIdx int    `db:"guess_idx"`
	// Milliseconds since the puzzle base date, for ordering
	Created int64 `db:"created"`
}
