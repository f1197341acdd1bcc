package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ikornaselur/similarium/bot"
	"github.com/ikornaselur/similarium/config"
	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/events"
	"github.com/ikornaselur/similarium/repository"
	"github.com/ikornaselur/similarium/scheduler"
	"github.com/ikornaselur/similarium/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting similarium bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	nearbyCache, err := repository.NewNearbyCache(cfg.NearbyCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create nearby cache: %w", err)
	}
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus, nearbyCache)

	// Initialize services
	gameService := service.NewGameService(uowFactory, cfg.SimilarityCount, cfg.HintThreshold)
	channelService := service.NewChannelService(uowFactory)
	userService := service.NewUserService(uowFactory)

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:               cfg.DiscordToken,
		GuildID:             cfg.DiscordGuildID,
		SimilarityCount:     cfg.SimilarityCount,
		TopGuessesToShow:    cfg.TopGuessesToShow,
		LatestGuessesToShow: cfg.LatestGuessesToShow,
	}
	discordBot, err := bot.New(botConfig, gameService, channelService, userService)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	bot.RegisterBotSubscriptions(eventBus, discordBot)

	// Start the hourly game scheduler
	gameScheduler := scheduler.New(gameService, channelService, discordBot)
	stopScheduler := gameScheduler.Start(ctx)
	log.Println("Game scheduler started")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	stopScheduler()

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
