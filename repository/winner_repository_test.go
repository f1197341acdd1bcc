package repository

import (
	"context"
	"testing"

	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinnerRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWinnerRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")

	winner := &models.GameWinner{GameID: game.ID, UserID: "U1", GuessIdx: 7}
	require.NoError(t, repo.Create(ctx, winner))
	assert.False(t, winner.CreatedAt.IsZero())

	t.Run("one win per user per game", func(t *testing.T) {
		dup := &models.GameWinner{GameID: game.ID, UserID: "U1", GuessIdx: 9}
		assert.Error(t, repo.Create(ctx, dup))
	})
}

func TestWinnerRepository_GetByGameAndUser(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWinnerRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	seedUser(t, testDB, "U1")

	t.Run("not a winner", func(t *testing.T) {
		winner, err := repo.GetByGameAndUser(ctx, game.ID, "U1")
		require.NoError(t, err)
		assert.Nil(t, winner)
	})

	t.Run("winner found", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.GameWinner{GameID: game.ID, UserID: "U1", GuessIdx: 7}))

		winner, err := repo.GetByGameAndUser(ctx, game.ID, "U1")
		require.NoError(t, err)
		require.NotNil(t, winner)
		assert.Equal(t, 7, winner.GuessIdx)
	})
}

func TestWinnerRepository_GetByGame(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWinnerRepository(testDB.DB)
	ctx := context.Background()

	game := seedGame(t, testDB, "C1", "apple")
	for _, id := range []string{"U1", "U2", "U3"} {
		seedUser(t, testDB, id)
	}

	// Arrival order, not guess index order
	require.NoError(t, repo.Create(ctx, &models.GameWinner{GameID: game.ID, UserID: "U2", GuessIdx: 12}))
	require.NoError(t, repo.Create(ctx, &models.GameWinner{GameID: game.ID, UserID: "U1", GuessIdx: 5}))
	require.NoError(t, repo.Create(ctx, &models.GameWinner{GameID: game.ID, UserID: "U3", GuessIdx: 5}))

	winners, err := repo.GetByGame(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, winners, 3)

	assert.Equal(t, "U2", winners[0].UserID)
	assert.Equal(t, "U1", winners[1].UserID)
	assert.Equal(t, "U3", winners[2].UserID)

	count, err := repo.CountByGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
