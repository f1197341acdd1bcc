package bot

import (
	"fmt"
	"math"
	"strings"

	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/service"
)

const space = " "

// partialEmojis is the number of fill steps per progress bar emoji.
// :p0: is transparent and :p1: through :p8: fill in from the left, 16
// pixels out of 128 at each step.
const partialEmojis = 8

const progressBarWidth = 6

// HeaderText is the title line of a game message
func HeaderText(game *models.Game) string {
	return fmt.Sprintf("%s - Puzzle number %d", game.Date, game.PuzzleNumber)
}

// HeaderBody describes the secret's similarity landscape so players can
// judge how warm their guesses are
func HeaderBody(sr *models.SimilarityRange) string {
	return fmt.Sprintf(
		"The nearest word has a similarity of %.02f, "+
			"the tenth-nearest has a similarity of %.02f and "+
			"the one thousandth nearest word has a similarity of %.02f.",
		sr.Top*100, sr.Top10*100, sr.Rest*100,
	)
}

// ProgressBar renders amount/total as width custom emojis.
//
// The first emoji is only :p0: when amount is 0, no matter the total,
// and the last emoji is never :p8: unless amount equals total.
func ProgressBar(amount, total, width int) string {
	if width < 1 {
		panic("progress bar width needs to be at least 1")
	}

	if amount >= total {
		return strings.Repeat(":p8:", width)
	}
	if amount <= 0 {
		return strings.Repeat(":p0:", width)
	}

	// Each emoji covers partialEmojis sections, minus one to account for
	// the final state of amount == total
	sectionCount := partialEmojis*width - 1

	// All sections but the last state share the remaining values
	sectionSize := float64(total-1) / float64(sectionCount)

	// Round before the ceil to keep exact multiples from spilling into
	// the next section
	filledSections := int(math.Ceil(math.Round(float64(amount)/sectionSize*1e8) / 1e8))

	fullEmojis := filledSections / partialEmojis
	partialUnits := filledSections % partialEmojis

	var out strings.Builder
	out.WriteString(strings.Repeat(":p8:", fullEmojis))
	out.WriteString(fmt.Sprintf(":p%d:", partialUnits))
	out.WriteString(strings.Repeat(":p0:", width-fullEmojis-1))

	return out.String()
}

// Closeness renders a guess's rank within the secret's neighbor set, or
// how warm it is when untracked. Untracked guesses warmer than the
// floor of the tracked range show "????", the rest show "cold".
func Closeness(guess *models.Guess, sr *models.SimilarityRange, similarityCount int) string {
	if guess.InTopRange() {
		var percentile string
		switch {
		case guess.Percentile < 10:
			percentile = strings.Repeat(space, 7) + fmt.Sprint(guess.Percentile)
		case guess.Percentile < 100:
			percentile = strings.Repeat(space, 4) + fmt.Sprint(guess.Percentile)
		case guess.Percentile < 1000:
			percentile = strings.Repeat(space, 2) + fmt.Sprint(guess.Percentile)
		default:
			percentile = fmt.Sprint(guess.Percentile)
		}
		return fmt.Sprintf("%s %s/%d", ProgressBar(guess.Percentile, similarityCount, progressBarWidth), percentile, similarityCount)
	}

	// Similarity on the guess runs up to 100 while the range runs up to 1.0
	var label string
	if guess.Similarity > sr.Rest*100 {
		label = "????"
	} else {
		label = "cold"
	}

	return fmt.Sprintf("%s%s%s", ProgressBar(0, similarityCount, progressBarWidth), strings.Repeat(space, 14), label)
}

// GuessIdx renders the guess's sequence index padded so columns line up
func GuessIdx(guess *models.Guess) string {
	// 6 spaces for idx < 10, 4 for idx < 100, else 2
	repeats := 3 - int(math.Log10(float64(guess.Idx)))
	if repeats < 1 {
		repeats = 1
	}

	return fmt.Sprintf("%d.%s", guess.Idx, strings.Repeat(space+space, repeats))
}

// GuessSimilarity renders the similarity score right-aligned in italics
func GuessSimilarity(guess *models.Guess) string {
	prefix := ""
	if guess.Similarity >= 0 {
		// Account for the missing negative sign
		prefix += space
	}
	if math.Abs(guess.Similarity) < 10 {
		prefix += strings.Repeat(space, 2)
	}

	return fmt.Sprintf("%s_%.02f_%s", prefix, guess.Similarity, strings.Repeat(space, 7))
}

// GuessWord renders the guessed word in bold
func GuessWord(guess *models.Guess) string {
	return fmt.Sprintf("**%s**", guess.Word)
}

// GuessLine renders one guess row for the game board. The user column
// shows whoever the row is attributed to, the first guesser on the top
// board and the latest submitter on the recent board.
func GuessLine(guess *models.Guess, game *models.Game, sr *models.SimilarityRange, similarityCount int, latest bool) string {
	closeness := Closeness(guess, sr, similarityCount)

	var info string
	if game.IsSecret(guess.Word) {
		if game.Active {
			info = fmt.Sprintf("%s%s:see_no_evil: _Secret will be revealed at the end_ :see_no_evil:",
				GuessIdx(guess), GuessSimilarity(guess))
		} else {
			info = fmt.Sprintf("%s%s:tada: %s :tada:",
				GuessIdx(guess), GuessSimilarity(guess), GuessWord(guess))
		}
	} else {
		info = fmt.Sprintf("%s%s%s", GuessIdx(guess), GuessSimilarity(guess), GuessWord(guess))
	}

	userID := guess.UserID
	if latest {
		userID = guess.LatestGuessUserID
	}

	return fmt.Sprintf("%s %s <@%s>", closeness, info, userID)
}

var celebrateEmojis = []string{
	":sparkles:",
	":medal:",
	":trophy:",
	":partying_face:",
	":tada:",
	":champagne:",
	":confetti_ball:",
	":dancer:",
	":man_dancing:",
	":star2:",
	":star_struck:",
	":clap:",
	":raised_hands:",
	":muscle:",
	":mechanical_arm:",
}

var celebrationMessages = map[service.CelebrationType][]string{
	service.CelebrationTop10: {
		"The guessing gods have blessed us! <@%[1]s> just guessed `%[2]s` in the top 10! %[3]s",
		"We've got a genius in our midst! <@%[1]s> just guessed `%[2]s` in the top 10! %[3]s",
		"The top 10 has been breached! <@%[1]s> just guessed `%[2]s`! %[3]s",
		"Incredible guess by <@%[1]s>! `%[2]s` has been guessed in the top 10! %[3]s",
		"We have a new leader! <@%[1]s> just guessed `%[2]s` in the top 10! %[3]s",
		"Bravo <@%[1]s>! `%[2]s` has just made it to the top 10! %[3]s",
	},
	service.CelebrationTop100: {
		"Our guessers are on fire! <@%[1]s> just guessed `%[2]s` in the top 100! %[3]s",
		"The guessing is heating up! <@%[1]s> just guessed `%[2]s` in the top 100! %[3]s",
		"We have a contender! <@%[1]s> guessed `%[2]s` in the top 100! %[3]s",
		"We're getting close! A guess from <@%[1]s> of `%[2]s` is in the top 100! %[3]s",
		"We're on a roll! A guess of `%[2]s` from <@%[1]s> has just entered the top 100! %[3]s",
	},
	service.CelebrationTop1000: {
		"<@%[1]s>'s getting close! The word `%[2]s` has just been guessed in the top 1000! %[3]s",
		"Great job <@%[1]s>! A guess of `%[2]s` has made it into the top 1000! %[3]s",
		"Keep it up <@%[1]s>! A guess of `%[2]s` has just entered the top 1000! %[3]s",
		"Great guess <@%[1]s>! `%[2]s` has just made it into the top 1000! %[3]s",
		"Congratulations <@%[1]s>! `%[2]s` is in the top 1000! %[3]s",
	},
	service.CelebrationTop10First: {
		"Unbelievable! The first green guess of `%[2]s` by <@%[1]s> was so close to the secret! It's like they have a sixth sense! %[3]s",
		"Wow! The first green guess of `%[2]s` by <@%[1]s> was insanely close to the secret! I think we have a genius among us! %[3]s",
		"Mind-blowing! The first green guess of `%[2]s` by <@%[1]s> was so close to the secret, they must have a direct line to the game master! %[3]s",
	},
	service.CelebrationTop1000First: {
		"Holy smokes! The very first guess of `%[2]s` and it's green! <@%[1]s>, you're a natural! %[3]s",
		"Unbelievable! The first guess from <@%[1]s> of `%[2]s` is a green one! We must be playing with a team of mind readers! %[3]s",
		"No way! The very first guess from <@%[1]s> of `%[2]s` and it's already in the top 1000! Our team is on fire! %[3]s",
	},
}

// CelebrationMessage picks a channel announcement for a celebrated guess
func CelebrationMessage(celebration service.CelebrationType, userID, word string) string {
	messages, ok := celebrationMessages[celebration]
	if !ok {
		return ""
	}

	message := messages[randIntn(len(messages))]
	emoji := celebrateEmojis[randIntn(len(celebrateEmojis))]

	return fmt.Sprintf(message, userID, word, emoji)
}

// SecretFoundMessage announces a winner in the channel
func SecretFoundMessage(userID string) string {
	emoji := celebrateEmojis[randIntn(len(celebrateEmojis))]
	return fmt.Sprintf("%s <@%s> has just found the secret of the day! %s", emoji, userID, emoji)
}
