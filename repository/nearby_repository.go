package repository

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// NearbyCache is a bounded cache over the nearby table, shared across
// repository instances. The table is read-only at runtime so both hits
// and misses are cached.
type NearbyCache struct {
	cache *lru.Cache[string, *models.Nearby]
}

// NewNearbyCache creates a nearby cache holding up to size entries
func NewNearbyCache(size int) (*NearbyCache, error) {
	cache, err := lru.New[string, *models.Nearby](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create nearby cache: %w", err)
	}
	return &NearbyCache{cache: cache}, nil
}

func nearbyCacheKey(word, neighbor string) string {
	return word + "\x00" + neighbor
}

// NearbyRepository implements the NearbyRepository interface
type NearbyRepository struct {
	q     queryable
	cache *NearbyCache
}

// NewNearbyRepository creates a new nearby repository
func NewNearbyRepository(db *database.DB, cache *NearbyCache) *NearbyRepository {
	return &NearbyRepository{q: db.Pool, cache: cache}
}

// newNearbyRepositoryWithTx creates a new nearby repository with a transaction
func newNearbyRepositoryWithTx(tx queryable, cache *NearbyCache) *NearbyRepository {
	return &NearbyRepository{q: tx, cache: cache}
}

// GetByWordAndNeighbor retrieves the precomputed neighbor entry for a
// guess against a secret, or nil if the guess is outside the secret's
// tracked neighbor set
func (r *NearbyRepository) GetByWordAndNeighbor(ctx context.Context, word, neighbor string) (*models.Nearby, error) {
	if r.cache != nil {
		if nearby, ok := r.cache.cache.Get(nearbyCacheKey(word, neighbor)); ok {
			return nearby, nil
		}
	}

	query := `
		SELECT word, neighbor, similarity, percentile
		FROM nearby
		WHERE word = $1 AND neighbor = $2
	`

	var nearby models.Nearby
	err := r.q.QueryRow(ctx, query, word, neighbor).Scan(
		&nearby.Word,
		&nearby.Neighbor,
		&nearby.Similarity,
		&nearby.Percentile,
	)

	if err == pgx.ErrNoRows {
		if r.cache != nil {
			r.cache.cache.Add(nearbyCacheKey(word, neighbor), nil)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby entry for %q against %q: %w", neighbor, word, err)
	}

	if r.cache != nil {
		r.cache.cache.Add(nearbyCacheKey(word, neighbor), &nearby)
	}

	return &nearby, nil
}

// GetByWordAndPercentile retrieves a secret's neighbor at an exact
// percentile, used when handing out hints
func (r *NearbyRepository) GetByWordAndPercentile(ctx context.Context, word string, percentile int) (*models.Nearby, error) {
	query := `
		SELECT word, neighbor, similarity, percentile
		FROM nearby
		WHERE word = $1 AND percentile = $2
	`

	var nearby models.Nearby
	err := r.q.QueryRow(ctx, query, word, percentile).Scan(
		&nearby.Word,
		&nearby.Neighbor,
		&nearby.Similarity,
		&nearby.Percentile,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby entry for %q at percentile %d: %w", word, percentile, err)
	}

	return &nearby, nil
}

// Insert stores a precomputed neighbor entry, used by the data import
// command
func (r *NearbyRepository) Insert(ctx context.Context, nearby *models.Nearby) error {
	query := `
		INSERT INTO nearby (word, neighbor, similarity, percentile)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (word, neighbor) DO UPDATE
		SET similarity = EXCLUDED.similarity, percentile = EXCLUDED.percentile
	`

	_, err := r.q.Exec(ctx, query, nearby.Word, nearby.Neighbor, nearby.Similarity, nearby.Percentile)
	if err != nil {
		return fmt.Errorf("failed to insert nearby entry for %q against %q: %w", nearby.Neighbor, nearby.Word, err)
	}

	return nil
}
