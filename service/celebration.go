package service

import (
	"github.com/ikornaselur/similarium/models"
)

// CelebrationType classifies a guess worth announcing in the channel.
// A guess is celebrated when it is the first to enter the top 1000, top
// 100 or top 10; a guess crossing several bands at once only gets the
// highest one.
type CelebrationType string

const (
	CelebrationNone CelebrationType = ""

	// The very first guess of the game landing inside the tracked set
	CelebrationTop10First   CelebrationType = "top_10_first"
	CelebrationTop1000First CelebrationType = "top_1000_first"

	CelebrationTop10   CelebrationType = "top_10"
	CelebrationTop100  CelebrationType = "top_100"
	CelebrationTop1000 CelebrationType = "top_1000"
)

// determineCelebration classifies a freshly created guess against the
// highest-ranked other guess in the game.
func determineCelebration(guess *models.Guess, highestOther *models.Guess) CelebrationType {
	if !guess.InTopRange() {
		return CelebrationNone
	}

	if highestOther == nil {
		// First guess of the whole game and it is green
		if guess.Percentile < 990 {
			return CelebrationTop1000First
		}
		return CelebrationTop10First
	}

	if highestOther.Percentile > guess.Percentile {
		return CelebrationNone
	}

	switch {
	case highestOther.Percentile == 0:
		// First green of the game
		switch {
		case guess.Percentile < 900:
			return CelebrationTop1000
		case guess.Percentile < 990:
			return CelebrationTop100
		default:
			return CelebrationTop10
		}
	case highestOther.Percentile < 900:
		// Field had not reached the top 100 yet
		switch {
		case guess.Percentile < 900:
			return CelebrationNone
		case guess.Percentile < 990:
			return CelebrationTop100
		default:
			return CelebrationTop10
		}
	case highestOther.Percentile < 990:
		// Field had not reached the top 10 yet
		if guess.Percentile < 990 {
			return CelebrationNone
		}
		return CelebrationTop10
	default:
		return CelebrationNone
	}
}
