package service

import (
	"context"

	"github.com/ikornaselur/similarium/events"
	"github.com/ikornaselur/similarium/models"
)

// GameRepository defines the interface for game data access
type GameRepository interface {
	// Create inserts a new game and fills in its assigned ID
	Create(ctx context.Context, game *models.Game) error

	// GetByID retrieves a game by its ID
	GetByID(ctx context.Context, id int64) (*models.Game, error)

	// GetByChannelThread retrieves the game posted as a specific message in a channel
	GetByChannelThread(ctx context.Context, channelID, threadID string) (*models.Game, error)

	// GetActiveInChannel returns all active games in a channel, oldest first
	GetActiveInChannel(ctx context.Context, channelID string) ([]*models.Game, error)

	// SetThreadID records the message the game was posted as
	SetThreadID(ctx context.Context, gameID int64, threadID string) error

	// SetInactive flips a game's active flag to false
	SetInactive(ctx context.Context, gameID int64) error
}

// GuessRepository defines the interface for guess data access
type GuessRepository interface {
	// Create inserts a new guess and fills in its assigned ID
	Create(ctx context.Context, guess *models.Guess) error

	// GetByGameAndWord retrieves a guess by its word within a game
	GetByGameAndWord(ctx context.Context, gameID int64, word string) (*models.Guess, error)

	// CountByGame returns the number of distinct guessed words in a game
	CountByGame(ctx context.Context, gameID int64) (int, error)

	// Touch marks an existing guess as freshly submitted
	Touch(ctx context.Context, guessID int64, updated int64, latestGuessUserID string) error

	// TopByGame returns the closest guesses, ties broken by which came first
	TopByGame(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error)

	// LatestByGame returns the most recently submitted guesses
	LatestByGame(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error)

	// TopPercentileExcludingWord returns the highest-ranked guess in a
	// game other than the given word, or nil if there are no others
	TopPercentileExcludingWord(ctx context.Context, gameID int64, word string) (*models.Guess, error)
}

// WinnerRepository defines the interface for winner data access
type WinnerRepository interface {
	// Create records that a user found the secret of a game
	Create(ctx context.Context, winner *models.GameWinner) error

	// GetByGameAndUser retrieves a user's win, or nil if they have not won
	GetByGameAndUser(ctx context.Context, gameID int64, userID string) (*models.GameWinner, error)

	// GetByGame returns a game's winners in the order they found the secret
	GetByGame(ctx context.Context, gameID int64) ([]*models.GameWinner, error)

	// CountByGame returns how many users have found a game's secret
	CountByGame(ctx context.Context, gameID int64) (int, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByID retrieves a user by their platform ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Upsert creates a user or refreshes their profile fields
	Upsert(ctx context.Context, user *models.User) error
}

// ChannelRepository defines the interface for channel data access
type ChannelRepository interface {
	// GetByID retrieves a channel by its ID
	GetByID(ctx context.Context, id string) (*models.Channel, error)

	// Upsert subscribes a channel or updates its posting hour
	Upsert(ctx context.Context, channel *models.Channel) error

	// Deactivate unsubscribes a channel from the daily puzzle
	Deactivate(ctx context.Context, id string) error

	// GetActiveByHour returns subscribed channels posting at the given hour
	GetActiveByHour(ctx context.Context, hour int) ([]*models.Channel, error)
}

// Word2VecRepository defines the interface for word vector lookups
type Word2VecRepository interface {
	// GetByWord retrieves a word's stored vector, or nil if unknown
	GetByWord(ctx context.Context, word string) (*models.Word2Vec, error)

	// Insert stores a word's vector
	Insert(ctx context.Context, w2v *models.Word2Vec) error
}

// NearbyRepository defines the interface for precomputed neighbor lookups
type NearbyRepository interface {
	// GetByWordAndNeighbor retrieves the neighbor entry for a guess
	// against a secret, or nil if the guess is outside the tracked set
	GetByWordAndNeighbor(ctx context.Context, word, neighbor string) (*models.Nearby, error)

	// GetByWordAndPercentile retrieves a secret's neighbor at an exact percentile
	GetByWordAndPercentile(ctx context.Context, word string, percentile int) (*models.Nearby, error)

	// Insert stores a precomputed neighbor entry
	Insert(ctx context.Context, nearby *models.Nearby) error
}

// SimilarityRangeRepository defines the interface for similarity statistics
type SimilarityRangeRepository interface {
	// GetByWord retrieves the similarity statistics for a word
	GetByWord(ctx context.Context, word string) (*models.SimilarityRange, error)

	// Insert stores a word's similarity statistics
	Insert(ctx context.Context, sr *models.SimilarityRange) error
}

// HintRepository defines the interface for hint seeker data access
type HintRepository interface {
	// Create records that a user asked for a hint in a game
	Create(ctx context.Context, seeker *models.GameHintSeeker) error

	// GetByGameAndUser retrieves a user's hint request, or nil
	GetByGameAndUser(ctx context.Context, gameID int64, userID string) (*models.GameHintSeeker, error)

	// GetByGame returns a game's hint seekers in the order they asked
	GetByGame(ctx context.Context, gameID int64) ([]*models.GameHintSeeker, error)
}

// GuessResult is the outcome of a guess submission
type GuessResult struct {
	Guess *models.Guess

	// IsNew is false when the word had already been guessed in this game
	IsNew bool

	// IsSecret and WinnerRank are set when the guess matched the secret;
	// WinnerRank is 1-based arrival order among the game's winners
	IsSecret   bool
	WinnerRank int

	// Celebration is set when a new guess deserves a shout-out
	Celebration CelebrationType
}

// GameService defines the interface for game operations
type GameService interface {
	// CreateGame starts a new game in a channel for a puzzle number,
	// deriving the secret from the channel's shuffled word list
	CreateGame(ctx context.Context, channelID string, puzzleNumber int) (*models.Game, error)

	// SetGameThread records the message a game was posted as
	SetGameThread(ctx context.Context, gameID int64, threadID string) error

	// GetGameByThread retrieves the game posted as a specific message
	GetGameByThread(ctx context.Context, channelID, threadID string) (*models.Game, error)

	// GetActiveGames returns the active games in a channel, oldest first
	GetActiveGames(ctx context.Context, channelID string) ([]*models.Game, error)

	// AddGuess scores and records a guess for a user in a game
	AddGuess(ctx context.Context, gameID int64, userID, word string) (*GuessResult, error)

	// TopGuesses returns the closest guesses in a game
	TopGuesses(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error)

	// LatestGuesses returns the most recently submitted guesses in a game
	LatestGuesses(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error)

	// WinnersMessages returns one recap line per winner, in arrival order
	WinnersMessages(ctx context.Context, gameID int64) ([]string, error)

	// SimilarityRange returns the similarity statistics for a game's secret
	SimilarityRange(ctx context.Context, gameID int64) (*models.SimilarityRange, error)

	// TakeHint records a hint request and returns the hint word
	TakeHint(ctx context.Context, gameID int64, userID string) (*models.Nearby, error)

	// HintSeekers returns who took a hint in a game, in the order they asked
	HintSeekers(ctx context.Context, gameID int64) ([]*models.GameHintSeeker, error)

	// EndGame finishes a game; active flips true to false exactly once
	EndGame(ctx context.Context, gameID int64) (*models.Game, error)
}

// ChannelService defines the interface for puzzle subscriptions
type ChannelService interface {
	// Subscribe signs a channel up for a daily puzzle at an hour (UTC)
	Subscribe(ctx context.Context, channelID, teamID string, hour int) (*models.Channel, error)

	// Unsubscribe stops the daily puzzle in a channel
	Unsubscribe(ctx context.Context, channelID string) error

	// GetChannel retrieves a channel's subscription, or nil
	GetChannel(ctx context.Context, channelID string) (*models.Channel, error)

	// ChannelsForHour returns subscribed channels posting at the given hour
	ChannelsForHour(ctx context.Context, hour int) ([]*models.Channel, error)
}

// UserService defines the interface for user operations
type UserService interface {
	// GetOrCreateUser retrieves a user, creating or refreshing them from
	// the platform profile data
	GetOrCreateUser(ctx context.Context, id, username, profilePhoto string) (*models.User, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	GameRepository() GameRepository
	GuessRepository() GuessRepository
	WinnerRepository() WinnerRepository
	UserRepository() UserRepository
	ChannelRepository() ChannelRepository
	Word2VecRepository() Word2VecRepository
	NearbyRepository() NearbyRepository
	SimilarityRangeRepository() SimilarityRangeRepository
	HintRepository() HintRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
