package bot

import (
	"strings"
	"testing"

	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/service"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		expected string
	}{
		{"empty at zero", 0, ":p0::p0::p0::p0::p0::p0:"},
		{"never empty above zero", 1, ":p1::p0::p0::p0::p0::p0:"},
		{"partial fill", 100, ":p5::p0::p0::p0::p0::p0:"},
		{"half way", 500, ":p8::p8::p8::p0::p0::p0:"},
		{"nearly done", 999, ":p8::p8::p8::p8::p8::p7:"},
		{"full only at total", 1000, ":p8::p8::p8::p8::p8::p8:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressBar(tt.amount, 1000, 6))
		})
	}
}

func TestProgressBar_NegativeAmount(t *testing.T) {
	assert.Equal(t, ":p0::p0::p0:", ProgressBar(-5, 1000, 3))
}

func TestProgressBar_AmountOverTotal(t *testing.T) {
	assert.Equal(t, ":p8::p8::p8:", ProgressBar(1500, 1000, 3))
}

func TestCloseness_Ranked(t *testing.T) {
	sr := &models.SimilarityRange{Word: "apple", Top: 0.8, Top10: 0.6, Rest: 0.3}

	tests := []struct {
		name       string
		percentile int
		suffix     string
	}{
		{"single digit right aligned", 7, "        7/1000"},
		{"two digits", 42, "     42/1000"},
		{"three digits", 950, "   950/1000"},
		{"four digits", 1000, " 1000/1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess := &models.Guess{Percentile: tt.percentile, Similarity: 50}
			got := Closeness(guess, sr, 1000)
			assert.True(t, strings.HasSuffix(got, tt.suffix), "got %q", got)
		})
	}
}

func TestCloseness_Unranked(t *testing.T) {
	sr := &models.SimilarityRange{Word: "apple", Top: 0.8, Top10: 0.6, Rest: 0.3}

	// Warmer than the farthest tracked neighbor but not in the set
	warm := &models.Guess{Percentile: 0, Similarity: 35}
	assert.True(t, strings.HasSuffix(Closeness(warm, sr, 1000), "????"))

	cold := &models.Guess{Percentile: 0, Similarity: 12}
	assert.True(t, strings.HasSuffix(Closeness(cold, sr, 1000), "cold"))

	// The empty bar is rendered either way
	assert.True(t, strings.HasPrefix(Closeness(cold, sr, 1000), ":p0::p0::p0::p0::p0::p0:"))
}

func TestGuessIdx(t *testing.T) {
	assert.Equal(t, "1.      ", GuessIdx(&models.Guess{Idx: 1}))
	assert.Equal(t, "99.    ", GuessIdx(&models.Guess{Idx: 99}))
	assert.Equal(t, "100.  ", GuessIdx(&models.Guess{Idx: 100}))
	assert.Equal(t, "5000.  ", GuessIdx(&models.Guess{Idx: 5000}))
}

func TestGuessSimilarity(t *testing.T) {
	assert.Equal(t, "   _5.00_       ", GuessSimilarity(&models.Guess{Similarity: 5}))
	assert.Equal(t, " _55.12_       ", GuessSimilarity(&models.Guess{Similarity: 55.12}))
	assert.Equal(t, "  _-9.30_       ", GuessSimilarity(&models.Guess{Similarity: -9.3}))
	assert.Equal(t, "_-12.00_       ", GuessSimilarity(&models.Guess{Similarity: -12}))
}

func TestGuessLine(t *testing.T) {
	sr := &models.SimilarityRange{Word: "apple", Top: 0.8, Top10: 0.6, Rest: 0.3}
	game := &models.Game{ID: 1, Secret: "apple", Active: true}

	guess := &models.Guess{
		Word:              "pear",
		Percentile:        950,
		Similarity:        55.5,
		Idx:               3,
		UserID:            "U1",
		LatestGuessUserID: "U2",
	}

	top := GuessLine(guess, game, sr, 1000, false)
	assert.Contains(t, top, "**pear**")
	assert.Contains(t, top, "<@U1>")
	assert.NotContains(t, top, "<@U2>")

	latest := GuessLine(guess, game, sr, 1000, true)
	assert.Contains(t, latest, "<@U2>")
}

func TestGuessLine_SecretHiddenWhileActive(t *testing.T) {
	sr := &models.SimilarityRange{Word: "apple", Top: 0.8, Top10: 0.6, Rest: 0.3}
	game := &models.Game{ID: 1, Secret: "apple", Active: true}
	guess := &models.Guess{Word: "apple", Percentile: 1000, Similarity: 100, Idx: 10, UserID: "U1"}

	line := GuessLine(guess, game, sr, 1000, false)
	assert.Contains(t, line, "Secret will be revealed at the end")
	assert.NotContains(t, line, "**apple**")

	game.Active = false
	line = GuessLine(guess, game, sr, 1000, false)
	assert.Contains(t, line, ":tada: **apple** :tada:")
}

func TestCelebrationMessage(t *testing.T) {
	original := randIntn
	randIntn = func(n int) int { return 0 }
	defer func() { randIntn = original }()

	message := CelebrationMessage(service.CelebrationTop10, "U1", "pear")
	assert.Contains(t, message, "<@U1>")
	assert.Contains(t, message, "`pear`")
	assert.Contains(t, message, "top 10")

	assert.Empty(t, CelebrationMessage(service.CelebrationNone, "U1", "pear"))
}

func TestSecretFoundMessage(t *testing.T) {
	original := randIntn
	randIntn = func(n int) int { return 2 }
	defer func() { randIntn = original }()

	message := SecretFoundMessage("U1")
	assert.Equal(t, ":trophy: <@U1> has just found the secret of the day! :trophy:", message)
}
