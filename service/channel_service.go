package service

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/models"
	log "github.com/sirupsen/logrus"
)

// channelService implements the ChannelService interface
type channelService struct {
	uowFactory UnitOfWorkFactory
}

// NewChannelService creates a new channel service
func NewChannelService(uowFactory UnitOfWorkFactory) ChannelService {
	return &channelService{uowFactory: uowFactory}
}

// Subscribe signs a channel up for a daily puzzle at an hour (UTC).
// Subscribing an already subscribed channel moves its hour.
func (s *channelService) Subscribe(ctx context.Context, channelID, teamID string, hour int) (*models.Channel, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23, got %d", hour)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	channel := &models.Channel{
		ID:     channelID,
		TeamID: teamID,
		Hour:   hour,
		Active: true,
	}
	if err := uow.ChannelRepository().Upsert(ctx, channel); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"channelID": channelID,
		"hour":      hour,
	}).Info("Channel subscribed to daily puzzle")

	return channel, nil
}

// Unsubscribe stops the daily puzzle in a channel
func (s *channelService) Unsubscribe(ctx context.Context, channelID string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.ChannelRepository().Deactivate(ctx, channelID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"channelID": channelID,
	}).Info("Channel unsubscribed from daily puzzle")

	return nil
}

// GetChannel retrieves a channel's subscription, or nil
func (s *channelService) GetChannel(ctx context.Context, channelID string) (*models.Channel, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	channel, err := uow.ChannelRepository().GetByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return channel, nil
}

// ChannelsForHour returns subscribed channels posting at the given hour
func (s *channelService) ChannelsForHour(ctx context.Context, hour int) ([]*models.Channel, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	channels, err := uow.ChannelRepository().GetActiveByHour(ctx, hour)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return channels, nil
}
