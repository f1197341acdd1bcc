package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/models"
	"github.com/jackc/pgx/v5"
)

// ChannelRepository implements the ChannelRepository interface
type ChannelRepository struct {
	q queryable
}

// NewChannelRepository creates a new channel repository
func NewChannelRepository(db *database.DB) *ChannelRepository {
	return &ChannelRepository{q: db.Pool}
}

// newChannelRepositoryWithTx creates a new channel repository with a transaction
func newChannelRepositoryWithTx(tx queryable) *ChannelRepository {
	return &ChannelRepository{q: tx}
}

// GetByID retrieves a channel by its ID
func (r *ChannelRepository) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	query := `
		SELECT id, team_id, hour, active
		FROM channel
		WHERE id = $1
	`

	var channel models.Channel
	err := r.q.QueryRow(ctx, query, id).Scan(
		&channel.ID,
		&channel.TeamID,
		&channel.Hour,
		&channel.Active,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", id, err)
	}

	return &channel, nil
}

// Upsert subscribes a channel, or updates its posting hour and
// reactivates it if it was unsubscribed before
func (r *ChannelRepository) Upsert(ctx context.Context, channel *models.Channel) error {
	query := `
		INSERT INTO channel (id, team_id, hour, active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (id) DO UPDATE
		SET team_id = EXCLUDED.team_id, hour = EXCLUDED.hour, active = TRUE
	`

	_, err := r.q.Exec(ctx, query, channel.ID, channel.TeamID, channel.Hour)
	if err != nil {
		return fmt.Errorf("failed to upsert channel %s: %w", channel.ID, err)
	}

	channel.Active = true
	return nil
}

// Deactivate unsubscribes a channel from the daily puzzle
func (r *ChannelRepository) Deactivate(ctx context.Context, id string) error {
	query := `
		UPDATE channel
		SET active = FALSE
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate channel %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("channel %s not found", id)
	}

	return nil
}

// GetActiveByHour returns the subscribed channels whose daily puzzle is
// posted at the given hour (UTC)
func (r *ChannelRepository) GetActiveByHour(ctx context.Context, hour int) ([]*models.Channel, error) {
	query := `
		SELECT id, team_id, hour, active
		FROM channel
		WHERE active AND hour = $1
		ORDER BY id ASC
	`

	rows, err := r.q.Query(ctx, query, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get active channels for hour %d: %w", hour, err)
	}
	defer rows.Close()

	var channels []*models.Channel
	for rows.Next() {
		var channel models.Channel
		err := rows.Scan(
			&channel.ID,
			&channel.TeamID,
			&channel.Hour,
			&channel.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, &channel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channels: %w", err)
	}

	return channels, nil
}
