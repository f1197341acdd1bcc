package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// WinnerRepository implements the WinnerRepository interface
type WinnerRepository struct {
	q queryable
}

// NewWinnerRepository creates a new winner repository
func NewWinnerRepository(db *database.DB) *WinnerRepository {
	return &WinnerRepository{q: db.Pool}
}

// newWinnerRepositoryWithTx creates a new winner repository with a transaction
func newWinnerRepositoryWithTx(tx queryable) *WinnerRepository {
	return &WinnerRepository{q: tx}
}

// Create records that a user found the secret of a game
func (r *WinnerRepository) Create(ctx context.Context, winner *models.GameWinner) error {
	query := `
		INSERT INTO game_user_winner (game_id, user_id, guess_idx)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := r.q.QueryRow(ctx, query,
		winner.GameID,
		winner.UserID,
		winner.GuessIdx,
	).Scan(&winner.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create winner for user %s in game %d: %w", winner.UserID, winner.GameID, err)
	}

	return nil
}

// GetByGameAndUser retrieves a user's win in a game, or nil if they
// have not found the secret
func (r *WinnerRepository) GetByGameAndUser(ctx context.Context, gameID int64, userID string) (*models.GameWinner, error) {
	query := `
		SELECT game_id, user_id, guess_idx, created_at
		FROM game_user_winner
		WHERE game_id = $1 AND user_id = $2
	`

	var winner models.GameWinner
	err := r.q.QueryRow(ctx, query, gameID, userID).Scan(
		&winner.GameID,
		&winner.UserID,
		&winner.GuessIdx,
		&winner.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get winner for user %s in game %d: %w", userID, gameID, err)
	}

	return &winner, nil
}

// GetByGame returns a game's winners in the order they found the secret
func (r *WinnerRepository) GetByGame(ctx context.Context, gameID int64) ([]*models.GameWinner, error) {
	query := `
		SELECT game_id, user_id, guess_idx, created_at
		FROM game_user_winner
		WHERE game_id = $1
		ORDER BY id ASC
	`

	rows, err := r.q.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get winners in game %d: %w", gameID, err)
	}
	defer rows.Close()

	var winners []*models.GameWinner
	for rows.Next() {
		var winner models.GameWinner
		err := rows.Scan(
			&winner.GameID,
			&winner.UserID,
			&winner.GuessIdx,
			&winner.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan winner: %w", err)
		}
		winners = append(winners, &winner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate winners: %w", err)
	}

	return winners, nil
}

// CountByGame returns how many users have found a game's secret
func (r *WinnerRepository) CountByGame(ctx context.Context, gameID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM game_user_winner
		WHERE game_id = $1
	`

	var count int
	err := r.q.QueryRow(ctx, query, gameID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count winners in game %d: %w", gameID, err)
	}

	return count, nil
}
