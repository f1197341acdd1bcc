package service

import (
	"context"
	"testing"

	"github.com/ikornaselur/similarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestChannelService() (ChannelService, *MockUnitOfWork, *MockChannelRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockChannelRepo := new(MockChannelRepository)

	mockUoW.SetRepositories(nil, nil, nil, nil, mockChannelRepo, nil, nil, nil, nil)
	mockFactory.On("Create").Return(mockUoW)

	return NewChannelService(mockFactory), mockUoW, mockChannelRepo
}

func TestChannelService_Subscribe(t *testing.T) {
	ctx := context.Background()

	service, mockUoW, mockChannelRepo := createTestChannelService()
	setupTransactionMocks(mockUoW)

	mockChannelRepo.On("Upsert", ctx, mock.MatchedBy(func(c *models.Channel) bool {
		return c.ID == "C123" && c.Hour == 9 && c.Active
	})).Return(nil)

	channel, err := service.Subscribe(ctx, "C123", "T1", 9)

	assert.NoError(t, err)
	assert.True(t, channel.Active)
	mockChannelRepo.AssertExpectations(t)
}

func TestChannelService_Subscribe_BadHour(t *testing.T) {
	ctx := context.Background()

	service, _, mockChannelRepo := createTestChannelService()

	channel, err := service.Subscribe(ctx, "C123", "T1", 24)

	assert.Error(t, err)
	assert.Nil(t, channel)
	mockChannelRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestChannelService_Unsubscribe(t *testing.T) {
	ctx := context.Background()

	service, mockUoW, mockChannelRepo := createTestChannelService()
	setupTransactionMocks(mockUoW)

	mockChannelRepo.On("Deactivate", ctx, "C123").Return(nil)

	err := service.Unsubscribe(ctx, "C123")

	assert.NoError(t, err)
	mockChannelRepo.AssertExpectations(t)
}

func TestChannelService_ChannelsForHour(t *testing.T) {
	ctx := context.Background()

	service, mockUoW, mockChannelRepo := createTestChannelService()
	setupTransactionMocks(mockUoW)

	channels := []*models.Channel{
		{ID: "C1", Hour: 9, Active: true},
		{ID: "C2", Hour: 9, Active: true},
	}
	mockChannelRepo.On("GetActiveByHour", ctx, 9).Return(channels, nil)

	got, err := service.ChannelsForHour(ctx, 9)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
