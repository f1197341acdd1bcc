package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// Word2VecRepository implements the Word2VecRepository interface
type Word2VecRepository struct {
	q queryable
}

// NewWord2VecRepository creates a new word2vec repository
func NewWord2VecRepository(db *database.DB) *Word2VecRepository {
	return &Word2VecRepository{q: db.Pool}
}

// newWord2VecRepositoryWithTx creates a new word2vec repository with a transaction
func newWord2VecRepositoryWithTx(tx queryable) *Word2VecRepository {
	return &Word2VecRepository{q: tx}
}

// GetByWord retrieves a word's stored vector, or nil if the word is not
// in the vocabulary
func (r *Word2VecRepository) GetByWord(ctx context.Context, word string) (*models.Word2Vec, error) {
	query := `
		SELECT word, vec
		FROM word2vec
		WHERE word = $1
	`

	var w2v models.Word2Vec
	err := r.q.QueryRow(ctx, query, word).Scan(&w2v.Word, &w2v.Vec)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vector for word %q: %w", word, err)
	}

	return &w2v, nil
}

// Insert stores a word's vector, used by the data import command
func (r *Word2VecRepository) Insert(ctx context.Context, w2v *models.Word2Vec) error {
	query := `
		INSERT INTO word2vec (word, vec)
		VALUES ($1, $2)
		ON CONFLICT (word) DO UPDATE SET vec = EXCLUDED.vec
	`

	_, err := r.q.Exec(ctx, query, w2v.Word, w2v.Vec)
	if err != nil {
		return fmt.Errorf("failed to insert vector for word %q: %w", w2v.Word, err)
	}

	return nil
}
