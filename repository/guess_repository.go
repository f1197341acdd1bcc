package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// GuessRepository implements the GuessRepository interface
type GuessRepository struct {
	q queryable
}

// NewGuessRepository creates a new guess repository
func NewGuessRepository(db *database.DB) *GuessRepository {
	return &GuessRepository{q: db.Pool}
}

// newGuessRepositoryWithTx creates a new guess repository with a transaction
func newGuessRepositoryWithTx(tx queryable) *GuessRepository {
	return &GuessRepository{q: tx}
}

// Create inserts a new guess and fills in its assigned ID
func (r *GuessRepository) Create(ctx context.Context, guess *models.Guess) error {
	query := `
		INSERT INTO guess (game_id, updated, user_id, latest_guess_user_id, word, percentile, similarity, idx)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		guess.GameID,
		guess.Updated,
		guess.UserID,
		guess.LatestGuessUserID,
		guess.Word,
		guess.Percentile,
		guess.Similarity,
		guess.Idx,
	).Scan(&guess.ID)

	if err != nil {
		return fmt.Errorf("failed to create guess %q in game %d: %w", guess.Word, guess.GameID, err)
	}

	return nil
}

// GetByGameAndWord retrieves a guess by its word within a game
func (r *GuessRepository) GetByGameAndWord(ctx context.Context, gameID int64, word string) (*models.Guess, error) {
	query := `
		SELECT id, game_id, updated, user_id, latest_guess_user_id, word, percentile, similarity, idx
		FROM guess
		WHERE game_id = $1 AND word = $2
	`

	var guess models.Guess
	err := r.q.QueryRow(ctx, query, gameID, word).Scan(
		&guess.ID,
		&guess.GameID,
		&guess.Updated,
		&guess.UserID,
		&guess.LatestGuessUserID,
		&guess.Word,
		&guess.Percentile,
		&guess.Similarity,
		&guess.Idx,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guess %q in game %d: %w", word, gameID, err)
	}

	return &guess, nil
}

// CountByGame returns the number of distinct guessed words in a game
func (r *GuessRepository) CountByGame(ctx context.Context, gameID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM guess
		WHERE game_id = $1
	`

	var count int
	err := r.q.QueryRow(ctx, query, gameID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count guesses in game %d: %w", gameID, err)
	}

	return count, nil
}

// Touch marks an existing guess as freshly submitted, recording when and
// by whom, without changing who guessed it first
func (r *GuessRepository) Touch(ctx context.Context, guessID int64, updated int64, latestGuessUserID string) error {
	query := `
		UPDATE guess
		SET updated = $1, latest_guess_user_id = $2
		WHERE id = $3
	`

	result, err := r.q.Exec(ctx, query, updated, latestGuessUserID, guessID)
	if err != nil {
		return fmt.Errorf("failed to touch guess %d: %w", guessID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guess %d not found", guessID)
	}

	return nil
}

// TopByGame returns the closest guesses in a game, ties broken by which
// guess came first
func (r *GuessRepository) TopByGame(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error) {
	query := `
		SELECT id, game_id, updated, user_id, latest_guess_user_id, word, percentile, similarity, idx
		FROM guess
		WHERE game_id = $1
		ORDER BY similarity DESC, idx ASC
		LIMIT $2
	`

	return r.queryGuesses(ctx, query, gameID, limit)
}

// LatestByGame returns the most recently submitted guesses in a game
func (r *GuessRepository) LatestByGame(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error) {
	query := `
		SELECT id, game_id, updated, user_id, latest_guess_user_id, word, percentile, similarity, idx
		FROM guess
		WHERE game_id = $1
		ORDER BY updated DESC, id DESC
		LIMIT $2
	`

	return r.queryGuesses(ctx, query, gameID, limit)
}

// TopPercentileExcludingWord returns the highest-ranked guess in a game
// other than the given word, or nil if there are no other guesses
func (r *GuessRepository) TopPercentileExcludingWord(ctx context.Context, gameID int64, word string) (*models.Guess, error) {
	query := `
		SELECT id, game_id, updated, user_id, latest_guess_user_id, word, percentile, similarity, idx
		FROM guess
		WHERE game_id = $1 AND word != $2
		ORDER BY percentile DESC
		LIMIT 1
	`

	var guess models.Guess
	err := r.q.QueryRow(ctx, query, gameID, word).Scan(
		&guess.ID,
		&guess.GameID,
		&guess.Updated,
		&guess.UserID,
		&guess.LatestGuessUserID,
		&guess.Word,
		&guess.Percentile,
		&guess.Similarity,
		&guess.Idx,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get top guess in game %d excluding %q: %w", gameID, word, err)
	}

	return &guess, nil
}

func (r *GuessRepository) queryGuesses(ctx context.Context, query string, gameID int64, limit int) ([]*models.Guess, error) {
	rows, err := r.q.Query(ctx, query, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query guesses in game %d: %w", gameID, err)
	}
	defer rows.Close()

	var guesses []*models.Guess
	for rows.Next() {
		var guess models.Guess
		err := rows.Scan(
			&guess.ID,
			&guess.GameID,
			&guess.Updated,
			&guess.UserID,
			&guess.LatestGuessUserID,
			&guess.Word,
			&guess.Percentile,
			&guess.Similarity,
			&guess.Idx,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guess: %w", err)
		}
		guesses = append(guesses, &guess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guesses: %w", err)
	}

	return guesses, nil
}
