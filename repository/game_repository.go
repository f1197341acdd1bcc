package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// GameRepository implements the GameRepository interface
type GameRepository struct {
	q queryable
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{q: db.Pool}
}

// newGameRepositoryWithTx creates a new game repository with a transaction
func newGameRepositoryWithTx(tx queryable) *GameRepository {
	return &GameRepository{q: tx}
}

// Create inserts a new game and fills in its assigned ID
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO game (channel_id, thread_id, puzzle_number, date, active, secret)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		game.ChannelID,
		game.ThreadID,
		game.PuzzleNumber,
		game.Date,
		game.Active,
		game.Secret,
	).Scan(&game.ID)

	if err != nil {
		return fmt.Errorf("failed to create game for channel %s: %w", game.ChannelID, err)
	}

	return nil
}

// GetByID retrieves a game by its ID
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	query := `
		SELECT id, channel_id, thread_id, puzzle_number, date, active, secret
		FROM game
		WHERE id = $1
	`

	var game models.Game
	err := r.q.QueryRow(ctx, query, id).Scan(
		&game.ID,
		&game.ChannelID,
		&game.ThreadID,
		&game.PuzzleNumber,
		&game.Date,
		&game.Active,
		&game.Secret,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}

	return &game, nil
}

// GetByChannelThread retrieves the game posted as a specific message in a channel
func (r *GameRepository) GetByChannelThread(ctx context.Context, channelID, threadID string) (*models.Game, error) {
	query := `
		SELECT id, channel_id, thread_id, puzzle_number, date, active, secret
		FROM game
		WHERE channel_id = $1 AND thread_id = $2
	`

	var game models.Game
	err := r.q.QueryRow(ctx, query, channelID, threadID).Scan(
		&game.ID,
		&game.ChannelID,
		&game.ThreadID,
		&game.PuzzleNumber,
		&game.Date,
		&game.Active,
		&game.Secret,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game in channel %s thread %s: %w", channelID, threadID, err)
	}

	return &game, nil
}

// GetActiveInChannel returns all active games in a channel, oldest first
func (r *GameRepository) GetActiveInChannel(ctx context.Context, channelID string) ([]*models.Game, error) {
	query := `
		SELECT id, channel_id, thread_id, puzzle_number, date, active, secret
		FROM game
		WHERE channel_id = $1 AND active
		ORDER BY id ASC
	`

	rows, err := r.q.Query(ctx, query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active games in channel %s: %w", channelID, err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		var game models.Game
		err := rows.Scan(
			&game.ID,
			&game.ChannelID,
			&game.ThreadID,
			&game.PuzzleNumber,
			&game.Date,
			&game.Active,
			&game.Secret,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, &game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}

// SetThreadID records the message the game was posted as, once known
func (r *GameRepository) SetThreadID(ctx context.Context, gameID int64, threadID string) error {
	query := `
		UPDATE game
		SET thread_id = $1
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, threadID, gameID)
	if err != nil {
		return fmt.Errorf("failed to set thread for game %d: %w", gameID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("game %d not found", gameID)
	}

	return nil
}

// SetInactive flips a game's active flag to false. The flag never goes
// back to true.
func (r *GameRepository) SetInactive(ctx context.Context, gameID int64) error {
	query := `
		UPDATE game
		SET active = FALSE
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, gameID)
	if err != nil {
		return fmt.Errorf("failed to deactivate game %d: %w", gameID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("game %d not found", gameID)
	}

	return nil
}
