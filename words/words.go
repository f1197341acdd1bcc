package words

import (
	_ "embed"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"
)

// BaseDate is the date of puzzle number 0. Puzzle numbers count days since
// this date, and guess timestamps are milliseconds elapsed since it.
var BaseDate = time.Date(2022, time.May, 6, 0, 0, 0, 0, time.UTC)

//go:embed target_words.txt
var targetWordsRaw string

var targetWords = loadTargetWords()

func loadTargetWords() []string {
	var words []string
	for _, line := range strings.Split(targetWordsRaw, "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// TargetWordCount returns the number of secret candidates in the word list.
func TargetWordCount() int {
	return len(targetWords)
}

// TargetWords returns the secret candidates in file order. The caller
// must not modify the returned slice.
func TargetWords() []string {
	return targetWords
}

// GetSecret returns the secret word for a channel on a given puzzle number.
//
// The target words are shuffled per channel, seeded by the channel ID, so
// every channel walks the word list in its own fixed order. The puzzle
// number indexes into that order, wrapping around when the list is
// exhausted. The same (channel, puzzleNumber) pair always yields the same
// word.
func GetSecret(channelID string, puzzleNumber int) string {
	h := fnv.New64a()
	h.Write([]byte(channelID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	shuffled := make([]string, len(targetWords))
	copy(shuffled, targetWords)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[puzzleNumber%len(shuffled)]
}

// GetPuzzleNumber returns the puzzle number for the given time, which is
// the number of whole days elapsed since BaseDate.
func GetPuzzleNumber(at time.Time) int {
	return int(at.UTC().Sub(BaseDate).Hours() / 24)
}

// GetPuzzleDate returns the display date for a puzzle number, e.g.
// "Monday May 9".
func GetPuzzleDate(puzzleNumber int) string {
	date := BaseDate.AddDate(0, 0, puzzleNumber)
	return date.Format("Monday January 2")
}

// TimestampMS returns the milliseconds elapsed from BaseDate to t. It is
// only used to order guesses chronologically within a game.
func TimestampMS(t time.Time) int64 {
	return t.UTC().Sub(BaseDate).Milliseconds()
}
