package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Game rules
	SimilarityCount int // Size of the precomputed neighbor set per secret
	NearbyCacheSize int // Bound on the in-memory nearby lookup cache

	// Display
	TopGuessesToShow    int
	LatestGuessesToShow int

	// Hints
	HintThreshold int // How far below the top the hint word is drawn from

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Game settings with defaults
		SimilarityCount: 1000,
		NearbyCacheSize: 50000,

		TopGuessesToShow:    15,
		LatestGuessesToShow: 3,

		HintThreshold: 50,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if count := os.Getenv("SIMILARITY_COUNT"); count != "" {
		if parsed, err := strconv.Atoi(count); err == nil {
			config.SimilarityCount = parsed
		}
	}
	if size := os.Getenv("NEARBY_CACHE_SIZE"); size != "" {
		if parsed, err := strconv.Atoi(size); err == nil {
			config.NearbyCacheSize = parsed
		}
	}
	if top := os.Getenv("TOP_GUESSES_TO_SHOW"); top != "" {
		if parsed, err := strconv.Atoi(top); err == nil {
			config.TopGuessesToShow = parsed
		}
	}
	if latest := os.Getenv("LATEST_GUESSES_TO_SHOW"); latest != "" {
		if parsed, err := strconv.Atoi(latest); err == nil {
			config.LatestGuessesToShow = parsed
		}
	}
	if threshold := os.Getenv("HINT_THRESHOLD"); threshold != "" {
		if parsed, err := strconv.Atoi(threshold); err == nil {
			config.HintThreshold = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
