package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// HintRepository implements the HintRepository interface
type HintRepository struct {
	q queryable
}

// NewHintRepository creates a new hint repository
func NewHintRepository(db *database.DB) *HintRepository {
	return &HintRepository{q: db.Pool}
}

// newHintRepositoryWithTx creates a new hint repository with a transaction
func newHintRepositoryWithTx(tx queryable) *HintRepository {
	return &HintRepository{q: tx}
}

// Create records that a user asked for a hint in a game
func (r *HintRepository) Create(ctx context.Context, seeker *models.GameHintSeeker) error {
	query := `
		INSERT INTO game_user_hint (game_id, user_id, guess_idx, created)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (game_id, user_id) DO NOTHING
	`

	_, err := r.q.Exec(ctx, query, seeker.GameID, seeker.UserID, seeker.GuessIdx, seeker.Created)
	if err != nil {
		return fmt.Errorf("failed to create hint seeker for user %s in game %d: %w", seeker.UserID, seeker.GameID, err)
	}

	return nil
}

// GetByGameAndUser retrieves a user's hint request in a game, or nil if
// they have not asked for one
func (r *HintRepository) GetByGameAndUser(ctx context.Context, gameID int64, userID string) (*models.GameHintSeeker, error) {
	query := `
		SELECT game_id, user_id, guess_idx, created
		FROM game_user_hint
		WHERE game_id = $1 AND user_id = $2
	`

	var seeker models.GameHintSeeker
	err := r.q.QueryRow(ctx, query, gameID, userID).Scan(
		&seeker.GameID,
		&seeker.UserID,
		&seeker.GuessIdx,
		&seeker.Created,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hint seeker for user %s in game %d: %w", userID, gameID, err)
	}

	return &seeker, nil
}

// GetByGame returns a game's hint seekers in the order they asked
func (r *HintRepository) GetByGame(ctx context.Context, gameID int64) ([]*models.GameHintSeeker, error) {
	query := `
		SELECT game_id, user_id, guess_idx, created
		FROM game_user_hint
		WHERE game_id = $1
		ORDER BY created ASC
	`

	rows, err := r.q.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hint seekers in game %d: %w", gameID, err)
	}
	defer rows.Close()

	var seekers []*models.GameHintSeeker
	for rows.Next() {
		var seeker models.GameHintSeeker
		err := rows.Scan(
			&seeker.GameID,
			&seeker.UserID,
			&seeker.GuessIdx,
			&seeker.Created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hint seeker: %w", err)
		}
		seekers = append(seekers, &seeker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hint seekers: %w", err)
	}

	return seekers, nil
}
