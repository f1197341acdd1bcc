package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ikornaselur/similarium/events"
	"github.com/ikornaselur/similarium/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUnitOfWorkTest(t *testing.T) (*testutil.TestDatabase, *events.Bus, func() *unitOfWork) {
	t.Helper()
	testDB := testutil.SetupTestDatabase(t)

	eventBus := events.NewBus()
	cache, err := NewNearbyCache(16)
	require.NoError(t, err)
	factory := NewUnitOfWorkFactory(testDB.DB, eventBus, cache)

	return testDB, eventBus, func() *unitOfWork {
		return factory.Create().(*unitOfWork)
	}
}

func TestUnitOfWork_CommitPersists(t *testing.T) {
	t.Parallel()
	testDB, _, newUow := setupUnitOfWorkTest(t)
	ctx := context.Background()

	seedChannel(t, testDB, "C1")

	uow := newUow()
	require.NoError(t, uow.Begin(ctx))

	game := testutil.CreateTestGame("C1", "apple")
	require.NoError(t, uow.GameRepository().Create(ctx, game))
	require.NoError(t, uow.Commit())

	// Visible outside the transaction
	fetched, err := NewGameRepository(testDB.DB).GetByID(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "apple", fetched.Secret)
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	t.Parallel()
	testDB, _, newUow := setupUnitOfWorkTest(t)
	ctx := context.Background()

	seedChannel(t, testDB, "C1")

	uow := newUow()
	require.NoError(t, uow.Begin(ctx))

	game := testutil.CreateTestGame("C1", "apple")
	require.NoError(t, uow.GameRepository().Create(ctx, game))
	require.NoError(t, uow.Rollback())

	fetched, err := NewGameRepository(testDB.DB).GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestUnitOfWork_EventsFollowTransactionOutcome(t *testing.T) {
	t.Parallel()
	_, eventBus, newUow := setupUnitOfWorkTest(t)
	ctx := context.Background()

	received := make(chan events.Event, 2)
	eventBus.Subscribe(events.EventTypeGameStarted, func(ctx context.Context, event events.Event) {
		received <- event
	})

	t.Run("discarded on rollback", func(t *testing.T) {
		uow := newUow()
		require.NoError(t, uow.Begin(ctx))
		uow.EventBus().Publish(events.GameStartedEvent{GameID: 1, ChannelID: "C1"})
		require.NoError(t, uow.Rollback())

		select {
		case event := <-received:
			t.Fatalf("unexpected event after rollback: %v", event)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("flushed on commit", func(t *testing.T) {
		uow := newUow()
		require.NoError(t, uow.Begin(ctx))
		uow.EventBus().Publish(events.GameStartedEvent{GameID: 2, ChannelID: "C1"})
		require.NoError(t, uow.Commit())

		select {
		case event := <-received:
			started, ok := event.(events.GameStartedEvent)
			require.True(t, ok)
			assert.Equal(t, int64(2), started.GameID)
		case <-time.After(time.Second):
			t.Fatal("event was not flushed after commit")
		}
	})
}

func TestUnitOfWork_RepositoriesRequireBegin(t *testing.T) {
	t.Parallel()
	_, _, newUow := setupUnitOfWorkTest(t)

	uow := newUow()
	assert.Panics(t, func() { uow.GameRepository() })
	assert.Panics(t, func() { uow.GuessRepository() })

	t.Run("rollback before begin is a no-op", func(t *testing.T) {
		assert.NoError(t, uow.Rollback())
	})
}

func TestUnitOfWork_DoubleBegin(t *testing.T) {
	t.Parallel()
	_, _, newUow := setupUnitOfWorkTest(t)
	ctx := context.Background()

	uow := newUow()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	assert.Error(t, uow.Begin(ctx))
}
