package service

import (
	"testing"

	"github.com/ikornaselur/similarium/models"
	"github.com/stretchr/testify/assert"
)

func TestDetermineCelebration(t *testing.T) {
	tests := []struct {
		name         string
		guess        *models.Guess
		highestOther *models.Guess
		expected     CelebrationType
	}{
		{
			name:     "untracked guess is never celebrated",
			guess:    &models.Guess{Percentile: 0, Similarity: 35.0},
			expected: CelebrationNone,
		},
		{
			name:     "first guess of the game is green",
			guess:    &models.Guess{Percentile: 500},
			expected: CelebrationTop1000First,
		},
		{
			name:     "first guess of the game lands in the top ten",
			guess:    &models.Guess{Percentile: 995},
			expected: CelebrationTop10First,
		},
		{
			name:         "first green when the field is all cold",
			guess:        &models.Guess{Percentile: 200},
			highestOther: &models.Guess{Percentile: 0},
			expected:     CelebrationTop1000,
		},
		{
			name:         "straight into the top hundred past a cold field",
			guess:        &models.Guess{Percentile: 950},
			highestOther: &models.Guess{Percentile: 0},
			expected:     CelebrationTop100,
		},
		{
			name:         "straight into the top ten past a cold field",
			guess:        &models.Guess{Percentile: 995},
			highestOther: &models.Guess{Percentile: 0},
			expected:     CelebrationTop10,
		},
		{
			name:         "does not beat the field",
			guess:        &models.Guess{Percentile: 800},
			highestOther: &models.Guess{Percentile: 850},
			expected:     CelebrationNone,
		},
		{
			name:         "improves inside the same band",
			guess:        &models.Guess{Percentile: 870},
			highestOther: &models.Guess{Percentile: 850},
			expected:     CelebrationNone,
		},
		{
			name:         "first to break into the top hundred",
			guess:        &models.Guess{Percentile: 950},
			highestOther: &models.Guess{Percentile: 850},
			expected:     CelebrationTop100,
		},
		{
			name:         "first to break into the top ten",
			guess:        &models.Guess{Percentile: 991},
			highestOther: &models.Guess{Percentile: 950},
			expected:     CelebrationTop10,
		},
		{
			name:         "top ten already reached",
			guess:        &models.Guess{Percentile: 998},
			highestOther: &models.Guess{Percentile: 992},
			expected:     CelebrationNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineCelebration(tt.guess, tt.highestOther))
		})
	}
}
