package repository

import (
	"context"
	"testing"

	"github.com/ikornaselur/similarium/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessRepository_CreateAndGetByGameAndWord(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuessRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")

	t.Run("guess not found", func(t *testing.T) {
		guess, err := repo.GetByGameAndWord(ctx, game.ID, "pear")
		require.NoError(t, err)
		assert.Nil(t, guess)
	})

	t.Run("round trip", func(t *testing.T) {
		created := testutil.CreateTestGuess(game.ID, "U1", "pear", 950, 55.5, 1)
		require.NoError(t, repo.Create(ctx, created))
		assert.NotZero(t, created.ID)

		guess, err := repo.GetByGameAndWord(ctx, game.ID, "pear")
		require.NoError(t, err)
		require.NotNil(t, guess)

		assert.Equal(t, created.ID, guess.ID)
		assert.Equal(t, "U1", guess.UserID)
		assert.Equal(t, "U1", guess.LatestGuessUserID)
		assert.Equal(t, 950, guess.Percentile)
		assert.InDelta(t, 55.5, guess.Similarity, 0.0001)
		assert.Equal(t, 1, guess.Idx)
	})

	t.Run("word is unique per game", func(t *testing.T) {
		dup := testutil.CreateTestGuess(game.ID, "U1", "pear", 950, 55.5, 2)
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("same word allowed in another game", func(t *testing.T) {
		other := seedGame(t, testDB, "C2", "house")
		guess := testutil.CreateTestGuess(other.ID, "U1", "pear", 0, 12.3, 1)
		assert.NoError(t, repo.Create(ctx, guess))
	})
}

func TestGuessRepository_Touch(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuessRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")
	seedUser(t, testDB, "U2")

	guess := testutil.CreateTestGuess(game.ID, "U1", "pear", 950, 55.5, 1)
	require.NoError(t, repo.Create(ctx, guess))

	require.NoError(t, repo.Touch(ctx, guess.ID, guess.Updated+5000, "U2"))

	touched, err := repo.GetByGameAndWord(ctx, game.ID, "pear")
	require.NoError(t, err)

	// First guesser and score survive, only recency moves
	assert.Equal(t, "U1", touched.UserID)
	assert.Equal(t, "U2", touched.LatestGuessUserID)
	assert.Equal(t, guess.Updated+5000, touched.Updated)
	assert.Equal(t, 1, touched.Idx)

	t.Run("missing guess", func(t *testing.T) {
		assert.Error(t, repo.Touch(ctx, 999999, 1000, "U1"))
	})
}

func TestGuessRepository_CountByGame(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuessRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")

	count, err := repo.CountByGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for i, word := range []string{"pear", "plum", "fig"} {
		guess := testutil.CreateTestGuess(game.ID, "U1", word, 0, 10, i+1)
		require.NoError(t, repo.Create(ctx, guess))
	}

	count, err = repo.CountByGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGuessRepository_TopByGame(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuessRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")

	guesses := []struct {
		word       string
		similarity float64
		idx        int
	}{
		{"pear", 55.5, 1},
		{"plum", 70.2, 2},
		{"fig", 55.5, 3},
		{"chair", 10.1, 4},
	}
	for _, g := range guesses {
		guess := testutil.CreateTestGuess(game.ID, "U1", g.word, 0, g.similarity, g.idx)
		require.NoError(t, repo.Create(ctx, guess))
	}

	top, err := repo.TopByGame(ctx, game.ID, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	// Similarity descending, earlier guess wins the tie
	assert.Equal(t, "plum", top[0].Word)
	assert.Equal(t, "pear", top[1].Word)
	assert.Equal(t, "fig", top[2].Word)
}

func TestGuessRepository_LatestByGame(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuessRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")

	for i, word := range []string{"pear", "plum", "fig"} {
		guess := testutil.CreateTestGuess(game.ID, "U1", word, 0, 10, i+1)
		guess.Updated = int64(1000 * (i + 1))
		require.NoError(t, repo.Create(ctx, guess))
	}

	// Resubmitting an old word makes it the most recent
	pear, err := repo.GetByGameAndWord(ctx, game.ID, "pear")
	require.NoError(t, err)
	require.NoError(t, repo.Touch(ctx, pear.ID, 9000, "U1"))

	latest, err := repo.LatestByGame(ctx, game.ID, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	assert.Equal(t, "pear", latest[0].Word)
	assert.Equal(t, "fig", latest[1].Word)
}

func TestGuessRepository_TopPercentileExcludingWord(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuessRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")

	t.Run("no other guesses", func(t *testing.T) {
		guess, err := repo.TopPercentileExcludingWord(ctx, game.ID, "pear")
		require.NoError(t, err)
		assert.Nil(t, guess)
	})

	for i, g := range []struct {
		word       string
		percentile int
	}{
		{"pear", 950},
		{"plum", 800},
		{"chair", 0},
	} {
		guess := testutil.CreateTestGuess(game.ID, "U1", g.word, g.percentile, 50, i+1)
		require.NoError(t, repo.Create(ctx, guess))
	}

	t.Run("excludes the word itself", func(t *testing.T) {
		guess, err := repo.TopPercentileExcludingWord(ctx, game.ID, "pear")
		require.NoError(t, err)
		require.NotNil(t, guess)
		assert.Equal(t, "plum", guess.Word)
		assert.Equal(t, 800, guess.Percentile)
	})

	t.Run("returns the best other word", func(t *testing.T) {
		guess, err := repo.TopPercentileExcludingWord(ctx, game.ID, "chair")
		require.NoError(t, err)
		require.NotNil(t, guess)
		assert.Equal(t, "pear", guess.Word)
	})
}
