package service

import (
	"context"

	"github.com/ikornaselur/similarium/events"
	"github.com/ikornaselur/similarium/models"
	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock implementation of GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, game *models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetByChannelThread(ctx context.Context, channelID, threadID string) (*models.Game, error) {
	args := m.Called(ctx, channelID, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetActiveInChannel(ctx context.Context, channelID string) ([]*models.Game, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Game), args.Error(1)
}

func (m *MockGameRepository) SetThreadID(ctx context.Context, gameID int64, threadID string) error {
	args := m.Called(ctx, gameID, threadID)
	return args.Error(0)
}

func (m *MockGameRepository) SetInactive(ctx context.Context, gameID int64) error {
	args := m.Called(ctx, gameID)
	return args.Error(0)
}

// MockGuessRepository is a mock implementation of GuessRepository
type MockGuessRepository struct {
	mock.Mock
}

func (m *MockGuessRepository) Create(ctx context.Context, guess *models.Guess) error {
	args := m.Called(ctx, guess)
	return args.Error(0)
}

func (m *MockGuessRepository) GetByGameAndWord(ctx context.Context, gameID int64, word string) (*models.Guess, error) {
	args := m.Called(ctx, gameID, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guess), args.Error(1)
}

func (m *MockGuessRepository) CountByGame(ctx context.Context, gameID int64) (int, error) {
	args := m.Called(ctx, gameID)
	return args.Int(0), args.Error(1)
}

func (m *MockGuessRepository) Touch(ctx context.Context, guessID int64, updated int64, latestGuessUserID string) error {
	args := m.Called(ctx, guessID, updated, latestGuessUserID)
	return args.Error(0)
}

func (m *MockGuessRepository) TopByGame(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error) {
	args := m.Called(ctx, gameID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guess), args.Error(1)
}

func (m *MockGuessRepository) LatestByGame(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error) {
	args := m.Called(ctx, gameID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guess), args.Error(1)
}

func (m *MockGuessRepository) TopPercentileExcludingWord(ctx context.Context, gameID int64, word string) (*models.Guess, error) {
	args := m.Called(ctx, gameID, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guess), args.Error(1)
}

// MockWinnerRepository is a mock implementation of WinnerRepository
type MockWinnerRepository struct {
	mock.Mock
}

func (m *MockWinnerRepository) Create(ctx context.Context, winner *models.GameWinner) error {
	args := m.Called(ctx, winner)
	return args.Error(0)
}

func (m *MockWinnerRepository) GetByGameAndUser(ctx context.Context, gameID int64, userID string) (*models.GameWinner, error) {
	args := m.Called(ctx, gameID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameWinner), args.Error(1)
}

func (m *MockWinnerRepository) GetByGame(ctx context.Context, gameID int64) ([]*models.GameWinner, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GameWinner), args.Error(1)
}

func (m *MockWinnerRepository) CountByGame(ctx context.Context, gameID int64) (int, error) {
	args := m.Called(ctx, gameID)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockChannelRepository is a mock implementation of ChannelRepository
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Channel), args.Error(1)
}

func (m *MockChannelRepository) Upsert(ctx context.Context, channel *models.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockChannelRepository) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChannelRepository) GetActiveByHour(ctx context.Context, hour int) ([]*models.Channel, error) {
	args := m.Called(ctx, hour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Channel), args.Error(1)
}

// MockWord2VecRepository is a mock implementation of Word2VecRepository
type MockWord2VecRepository struct {
	mock.Mock
}

func (m *MockWord2VecRepository) GetByWord(ctx context.Context, word string) (*models.Word2Vec, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Word2Vec), args.Error(1)
}

func (m *MockWord2VecRepository) Insert(ctx context.Context, w2v *models.Word2Vec) error {
	args := m.Called(ctx, w2v)
	return args.Error(0)
}

// MockNearbyRepository is a mock implementation of NearbyRepository
type MockNearbyRepository struct {
	mock.Mock
}

func (m *MockNearbyRepository) GetByWordAndNeighbor(ctx context.Context, word, neighbor string) (*models.Nearby, error) {
	args := m.Called(ctx, word, neighbor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Nearby), args.Error(1)
}

func (m *MockNearbyRepository) GetByWordAndPercentile(ctx context.Context, word string, percentile int) (*models.Nearby, error) {
	args := m.Called(ctx, word, percentile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Nearby), args.Error(1)
}

func (m *MockNearbyRepository) Insert(ctx context.Context, nearby *models.Nearby) error {
	args := m.Called(ctx, nearby)
	return args.Error(0)
}

// MockSimilarityRangeRepository is a mock implementation of SimilarityRangeRepository
type MockSimilarityRangeRepository struct {
	mock.Mock
}

func (m *MockSimilarityRangeRepository) GetByWord(ctx context.Context, word string) (*models.SimilarityRange, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SimilarityRange), args.Error(1)
}

func (m *MockSimilarityRangeRepository) Insert(ctx context.Context, sr *models.SimilarityRange) error {
	args := m.Called(ctx, sr)
	return args.Error(0)
}

// MockHintRepository is a mock implementation of HintRepository
type MockHintRepository struct {
	mock.Mock
}

func (m *MockHintRepository) Create(ctx context.Context, seeker *models.GameHintSeeker) error {
	args := m.Called(ctx, seeker)
	return args.Error(0)
}

func (m *MockHintRepository) GetByGameAndUser(ctx context.Context, gameID int64, userID string) (*models.GameHintSeeker, error) {
	args := m.Called(ctx, gameID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameHintSeeker), args.Error(1)
}

func (m *MockHintRepository) GetByGame(ctx context.Context, gameID int64) ([]*models.GameHintSeeker, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GameHintSeeker), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher. Publish
// calls are recorded but not asserted by default.
type MockEventPublisher struct {
	mock.Mock
	Events []events.Event
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Events = append(m.Events, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Begin, Commit
// and Rollback go through the mock; repository getters return whatever
// SetRepositories was given.
type MockUnitOfWork struct {
	mock.Mock

	gameRepo     GameRepository
	guessRepo    GuessRepository
	winnerRepo   WinnerRepository
	userRepo     UserRepository
	channelRepo  ChannelRepository
	word2vecRepo Word2VecRepository
	nearbyRepo   NearbyRepository
	simRangeRepo SimilarityRangeRepository
	hintRepo     HintRepository
	eventBus     EventPublisher
}

// SetRepositories wires the repositories the unit of work hands out.
// Pass nil for repositories the test never touches.
func (m *MockUnitOfWork) SetRepositories(
	gameRepo GameRepository,
	guessRepo GuessRepository,
	winnerRepo WinnerRepository,
	userRepo UserRepository,
	channelRepo ChannelRepository,
	word2vecRepo Word2VecRepository,
	nearbyRepo NearbyRepository,
	simRangeRepo SimilarityRangeRepository,
	hintRepo HintRepository,
) {
	m.gameRepo = gameRepo
	m.guessRepo = guessRepo
	m.winnerRepo = winnerRepo
	m.userRepo = userRepo
	m.channelRepo = channelRepo
	m.word2vecRepo = word2vecRepo
	m.nearbyRepo = nearbyRepo
	m.simRangeRepo = simRangeRepo
	m.hintRepo = hintRepo
	m.eventBus = &MockEventPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) GameRepository() GameRepository { return m.gameRepo }

func (m *MockUnitOfWork) GuessRepository() GuessRepository { return m.guessRepo }

func (m *MockUnitOfWork) WinnerRepository() WinnerRepository { return m.winnerRepo }

func (m *MockUnitOfWork) UserRepository() UserRepository { return m.userRepo }

func (m *MockUnitOfWork) ChannelRepository() ChannelRepository { return m.channelRepo }

func (m *MockUnitOfWork) Word2VecRepository() Word2VecRepository { return m.word2vecRepo }

func (m *MockUnitOfWork) NearbyRepository() NearbyRepository { return m.nearbyRepo }

func (m *MockUnitOfWork) SimilarityRangeRepository() SimilarityRangeRepository {
	return m.simRangeRepo
}

func (m *MockUnitOfWork) HintRepository() HintRepository { return m.hintRepo }

func (m *MockUnitOfWork) EventBus() EventPublisher { return m.eventBus }

// PublishedEvents returns the events published through this unit of work
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	if pub, ok := m.eventBus.(*MockEventPublisher); ok {
		return pub.Events
	}
	return nil
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
