package testutil

import (
	"time"

	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/similarity"
	"github.com/ikornaselur/similarium/words"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(id, username string) *models.User {
	return &models.User{
		ID:           id,
		Username:     username,
		ProfilePhoto: "https://example.com/" + id + ".png",
	}
}

// CreateTestChannel creates a channel subscribed to the daily puzzle
func CreateTestChannel(id string, hour int) *models.Channel {
	return &models.Channel{
		ID:     id,
		TeamID: "T1",
		Hour:   hour,
		Active: true,
	}
}

// CreateTestGame creates an active game with default values
func CreateTestGame(channelID, secret string) *models.Game {
	return &models.Game{
		ChannelID:    channelID,
		ThreadID:     "",
		PuzzleNumber: 100,
		Date:         words.GetPuzzleDate(100),
		Active:       true,
		Secret:       secret,
	}
}

// CreateTestGuess creates a guess with default values
func CreateTestGuess(gameID int64, userID, word string, percentile int, sim float64, idx int) *models.Guess {
	return &models.Guess{
		GameID:            gameID,
		Updated:           words.TimestampMS(time.Now().UTC()),
		UserID:            userID,
		LatestGuessUserID: userID,
		Word:              word,
		Percentile:        percentile,
		Similarity:        sim,
		Idx:               idx,
	}
}

// CreateTestVector builds a deterministic full-precision embedding from
// a seed so distinct words get distinct vectors
func CreateTestVector(seed float64) []float64 {
	vec := make([]float64, similarity.Dimensions)
	for i := range vec {
		vec[i] = seed + float64(i)/similarity.Dimensions
	}
	return vec
}

// CreateTestWord2Vec creates a stored vector in the truncated encoding
func CreateTestWord2Vec(word string, seed float64) *models.Word2Vec {
	return &models.Word2Vec{
		Word: word,
		Vec:  similarity.Truncate(similarity.Encode(CreateTestVector(seed))),
	}
}

// CreateTestNearby creates a neighbor row for a secret
func CreateTestNearby(word, neighbor string, sim float64, percentile int) *models.Nearby {
	return &models.Nearby{
		Word:       word,
		Neighbor:   neighbor,
		Similarity: sim,
		Percentile: percentile,
	}
}

// CreateTestSimilarityRange creates similarity statistics for a secret
func CreateTestSimilarityRange(word string) *models.SimilarityRange {
	return &models.SimilarityRange{
		Word:  word,
		Top:   0.72,
		Top10: 0.55,
		Rest:  0.3,
	}
}
