package repository

import (
	"context"
	"testing"

	"github.com/ikornaselur/similarium/repository/testutil"
	"github.com/ikornaselur/similarium/similarity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord2VecRepository_GetByWord(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewWord2VecRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown word", func(t *testing.T) {
		w2v, err := repo.GetByWord(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, w2v)
	})

	t.Run("stored vector decodes", func(t *testing.T) {
		seedWord2Vec(t, testDB, "apple", 0.1)

		w2v, err := repo.GetByWord(ctx, "apple")
		require.NoError(t, err)
		require.NotNil(t, w2v)

		// Stored truncated, half the full wire width
		assert.Len(t, w2v.Vec, similarity.Dimensions*2)

		vec, err := w2v.ExpandedVec()
		require.NoError(t, err)
		assert.Len(t, vec, similarity.Dimensions)
	})
}

func TestSimilarityRangeRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewSimilarityRangeRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown word", func(t *testing.T) {
		sr, err := repo.GetByWord(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, sr)
	})

	t.Run("round trip", func(t *testing.T) {
		created := testutil.CreateTestSimilarityRange("apple")
		require.NoError(t, repo.Insert(ctx, created))

		sr, err := repo.GetByWord(ctx, "apple")
		require.NoError(t, err)
		require.NotNil(t, sr)
		assert.InDelta(t, created.Top, sr.Top, 0.0001)
		assert.InDelta(t, created.Top10, sr.Top10, 0.0001)
		assert.InDelta(t, created.Rest, sr.Rest, 0.0001)
	})
}
