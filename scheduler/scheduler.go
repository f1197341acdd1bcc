package scheduler

import (
	"context"
	"time"

	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/service"
	"github.com/ikornaselur/similarium/words"
	log "github.com/sirupsen/logrus"
)

// Messenger posts and updates game messages on the chat platform
type Messenger interface {
	// PostGame posts a new game to its channel and returns the message ID
	// the game lives under
	PostGame(ctx context.Context, channel *models.Channel, game *models.Game) (string, error)

	// FinishGame replaces a finished game's message with the final board
	// and secret reveal
	FinishGame(ctx context.Context, game *models.Game) error
}

// Scheduler runs the hourly puzzle rollover: channels subscribed to an
// hour get their active games ended and a fresh game posted.
type Scheduler struct {
	gameService    service.GameService
	channelService service.ChannelService
	messenger      Messenger
}

// New creates a scheduler
func New(gameService service.GameService, channelService service.ChannelService, messenger Messenger) *Scheduler {
	return &Scheduler{
		gameService:    gameService,
		channelService: channelService,
		messenger:      messenger,
	}
}

// Start runs the rollover worker until the context is cancelled.
// Returns a cleanup function to stop the worker gracefully.
func (s *Scheduler) Start(ctx context.Context) func() {
	stopChan := make(chan struct{})

	// Wait until the next top of the hour
	calculateNextRun := func() time.Duration {
		now := time.Now().UTC()
		next := now.Truncate(time.Hour).Add(time.Hour)
		return next.Sub(now)
	}

	go func() {
		log.Info("Hourly game scheduler started")

		for {
			waitDuration := calculateNextRun()
			log.Debugf("Scheduler waiting %v until next hour", waitDuration)

			select {
			case <-ctx.Done():
				log.Info("Scheduler shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Scheduler shutting down (stop requested)...")
				return
			case <-time.After(waitDuration):
				now := time.Now().UTC()
				s.RunHour(ctx, now.Hour(), now)
			}
		}
	}()

	return func() {
		close(stopChan)
	}
}

// RunHour rolls over every channel subscribed to the given hour: active
// games end first, then the day's new game is posted. A failing channel
// never blocks the rest.
func (s *Scheduler) RunHour(ctx context.Context, hour int, now time.Time) {
	channels, err := s.channelService.ChannelsForHour(ctx, hour)
	if err != nil {
		log.Errorf("Error getting channels for hour %d: %v", hour, err)
		return
	}

	log.WithFields(log.Fields{
		"hour":         hour,
		"channelCount": len(channels),
	}).Info("Running hourly game rollover")

	for _, channel := range channels {
		s.rolloverChannel(ctx, channel, now)
	}
}

func (s *Scheduler) rolloverChannel(ctx context.Context, channel *models.Channel, now time.Time) {
	games, err := s.gameService.GetActiveGames(ctx, channel.ID)
	if err != nil {
		log.Errorf("Error getting active games in channel %s: %v", channel.ID, err)
		return
	}

	for _, game := range games {
		ended, err := s.gameService.EndGame(ctx, game.ID)
		if err != nil {
			log.Errorf("Error ending game %d in channel %s: %v", game.ID, channel.ID, err)
			continue
		}

		if err := s.messenger.FinishGame(ctx, ended); err != nil {
			log.Errorf("Error updating finished game %d message: %v", game.ID, err)
		}
	}

	puzzleNumber := words.GetPuzzleNumber(now)

	game, err := s.gameService.CreateGame(ctx, channel.ID, puzzleNumber)
	if err != nil {
		log.Errorf("Error creating game in channel %s: %v", channel.ID, err)
		return
	}

	threadID, err := s.messenger.PostGame(ctx, channel, game)
	if err != nil {
		log.Errorf("Error posting game %d to channel %s: %v", game.ID, channel.ID, err)
		return
	}

	if err := s.gameService.SetGameThread(ctx, game.ID, threadID); err != nil {
		log.Errorf("Error recording thread for game %d: %v", game.ID, err)
	}
}
