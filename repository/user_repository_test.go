package repository

import (
	"context"
	"testing"

	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		user, err := repo.GetByID(ctx, "U404")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("user found", func(t *testing.T) {
		created := testutil.CreateTestUser("U1", "alice")
		require.NoError(t, repo.Upsert(ctx, created))

		user, err := repo.GetByID(ctx, "U1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, created.ProfilePhoto, user.ProfilePhoto)
	})
}

func TestUserRepository_Upsert(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.CreateTestUser("U1", "alice")))

	// A rename on the platform flows through on the next upsert
	renamed := &models.User{ID: "U1", Username: "alice2", ProfilePhoto: "https://example.com/new.png"}
	require.NoError(t, repo.Upsert(ctx, renamed))

	user, err := repo.GetByID(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	assert.Equal(t, "https://example.com/new.png", user.ProfilePhoto)
}
