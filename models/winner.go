package models

import (
	"time"
)

// GameWinner records that a user found the secret of a game. Winners are
// ranked by creation order, not by the guess index they won on.
type GameWinner struct {
	GameID    int64     `db:"game_id"`
	UserID    string    `db:"user_id"`
	GuessIdx  int       `db:"guess_idx"`
	CreatedAt time.Time `db:"created_at"`
}
