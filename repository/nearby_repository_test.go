package repository

import (
	"context"
	"testing"

	"github.com/ikornaselur/similarium/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyRepository_GetByWordAndNeighbor(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	cache, err := NewNearbyCache(16)
	require.NoError(t, err)
	repo := NewNearbyRepository(testDB.DB, cache)
	ctx := context.Background()

	seedWord2Vec(t, testDB, "apple", 0.1)
	seedWord2Vec(t, testDB, "pear", 0.2)

	require.NoError(t, repo.Insert(ctx, testutil.CreateTestNearby("apple", "pear", 55.5, 950)))

	t.Run("hit", func(t *testing.T) {
		nearby, err := repo.GetByWordAndNeighbor(ctx, "apple", "pear")
		require.NoError(t, err)
		require.NotNil(t, nearby)
		assert.Equal(t, 950, nearby.Percentile)
		assert.InDelta(t, 55.5, nearby.Similarity, 0.0001)
	})

	t.Run("miss is not an error", func(t *testing.T) {
		nearby, err := repo.GetByWordAndNeighbor(ctx, "apple", "chair")
		require.NoError(t, err)
		assert.Nil(t, nearby)
	})

	t.Run("direction matters", func(t *testing.T) {
		nearby, err := repo.GetByWordAndNeighbor(ctx, "pear", "apple")
		require.NoError(t, err)
		assert.Nil(t, nearby)
	})
}

func TestNearbyRepository_CachesHitsAndMisses(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	cache, err := NewNearbyCache(16)
	require.NoError(t, err)
	repo := NewNearbyRepository(testDB.DB, cache)
	ctx := context.Background()

	seedWord2Vec(t, testDB, "apple", 0.1)
	seedWord2Vec(t, testDB, "pear", 0.2)
	require.NoError(t, repo.Insert(ctx, testutil.CreateTestNearby("apple", "pear", 55.5, 950)))

	_, err = repo.GetByWordAndNeighbor(ctx, "apple", "pear")
	require.NoError(t, err)
	_, err = repo.GetByWordAndNeighbor(ctx, "apple", "chair")
	require.NoError(t, err)

	// Both lookups are answered from the cache once populated
	hit, ok := cache.cache.Get(nearbyCacheKey("apple", "pear"))
	require.True(t, ok)
	require.NotNil(t, hit)
	assert.Equal(t, 950, hit.Percentile)

	miss, ok := cache.cache.Get(nearbyCacheKey("apple", "chair"))
	require.True(t, ok)
	assert.Nil(t, miss)
}

func TestNearbyRepository_GetByWordAndPercentile(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	cache, err := NewNearbyCache(16)
	require.NoError(t, err)
	repo := NewNearbyRepository(testDB.DB, cache)
	ctx := context.Background()

	seedWord2Vec(t, testDB, "apple", 0.1)
	seedWord2Vec(t, testDB, "pear", 0.2)
	seedWord2Vec(t, testDB, "plum", 0.3)

	require.NoError(t, repo.Insert(ctx, testutil.CreateTestNearby("apple", "pear", 55.5, 950)))
	require.NoError(t, repo.Insert(ctx, testutil.CreateTestNearby("apple", "plum", 40.1, 800)))

	t.Run("found", func(t *testing.T) {
		nearby, err := repo.GetByWordAndPercentile(ctx, "apple", 950)
		require.NoError(t, err)
		require.NotNil(t, nearby)
		assert.Equal(t, "pear", nearby.Neighbor)
	})

	t.Run("no neighbor at percentile", func(t *testing.T) {
		nearby, err := repo.GetByWordAndPercentile(ctx, "apple", 123)
		require.NoError(t, err)
		assert.Nil(t, nearby)
	})
}
