package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// SimilarityRangeRepository implements the SimilarityRangeRepository interface
type SimilarityRangeRepository struct {
	q queryable
}

// NewSimilarityRangeRepository creates a new similarity range repository
func NewSimilarityRangeRepository(db *database.DB) *SimilarityRangeRepository {
	return &SimilarityRangeRepository{q: db.Pool}
}

// newSimilarityRangeRepositoryWithTx creates a new similarity range repository with a transaction
func newSimilarityRangeRepositoryWithTx(tx queryable) *SimilarityRangeRepository {
	return &SimilarityRangeRepository{q: tx}
}

// GetByWord retrieves the similarity statistics for a word
func (r *SimilarityRangeRepository) GetByWord(ctx context.Context, word string) (*models.SimilarityRange, error) {
	query := `
		SELECT word, top, top10, rest
		FROM similarity_range
		WHERE word = $1
	`

	var sr models.SimilarityRange
	err := r.q.QueryRow(ctx, query, word).Scan(&sr.Word, &sr.Top, &sr.Top10, &sr.Rest)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get similarity range for word %q: %w", word, err)
	}

	return &sr, nil
}

// Insert stores a word's similarity statistics, used by the data import
// command
func (r *SimilarityRangeRepository) Insert(ctx context.Context, sr *models.SimilarityRange) error {
	query := `
		INSERT INTO similarity_range (word, top, top10, rest)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (word) DO UPDATE
		SET top = EXCLUDED.top, top10 = EXCLUDED.top10, rest = EXCLUDED.rest
	`

	_, err := r.q.Exec(ctx, query, sr.Word, sr.Top, sr.Top10, sr.Rest)
	if err != nil {
		return fmt.Errorf("failed to insert similarity range for word %q: %w", sr.Word, err)
	}

	return nil
}
