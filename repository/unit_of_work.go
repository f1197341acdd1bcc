package repository

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/events"
	"github.com/ikornaselur/similarium/service"
	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db               *database.DB
	tx               pgx.Tx
	ctx              context.Context
	transactionalBus *events.TransactionalBus
	nearbyCache      *NearbyCache
	gameRepo         service.GameRepository
	guessRepo        service.GuessRepository
	winnerRepo       service.WinnerRepository
	userRepo         service.UserRepository
	channelRepo      service.ChannelRepository
	word2vecRepo     service.Word2VecRepository
	nearbyRepo       service.NearbyRepository
	simRangeRepo     service.SimilarityRangeRepository
	hintRepo         service.HintRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB, eventBus *events.Bus, nearbyCache *NearbyCache) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:          db,
		eventBus:    eventBus,
		nearbyCache: nearbyCache,
	}
}

type unitOfWorkFactory struct {
	db          *database.DB
	eventBus    *events.Bus
	nearbyCache *NearbyCache
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		db:               f.db,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
		nearbyCache:      f.nearbyCache,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories with the transaction
	u.gameRepo = newGameRepositoryWithTx(tx)
	u.guessRepo = newGuessRepositoryWithTx(tx)
	u.winnerRepo = newWinnerRepositoryWithTx(tx)
	u.userRepo = newUserRepositoryWithTx(tx)
	u.channelRepo = newChannelRepositoryWithTx(tx)
	u.word2vecRepo = newWord2VecRepositoryWithTx(tx)
	u.nearbyRepo = newNearbyRepositoryWithTx(tx, u.nearbyCache)
	u.simRangeRepo = newSimilarityRangeRepositoryWithTx(tx)
	u.hintRepo = newHintRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	if u.transactionalBus != nil {
		u.transactionalBus.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	// Discard pending events on rollback
	if u.transactionalBus != nil {
		u.transactionalBus.Discard()
	}

	return nil
}

// GameRepository returns the game repository for this unit of work
func (u *unitOfWork) GameRepository() service.GameRepository {
	if u.gameRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.gameRepo
}

// GuessRepository returns the guess repository for this unit of work
func (u *unitOfWork) GuessRepository() service.GuessRepository {
	if u.guessRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guessRepo
}

// WinnerRepository returns the winner repository for this unit of work
func (u *unitOfWork) WinnerRepository() service.WinnerRepository {
	if u.winnerRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.winnerRepo
}

// UserRepository returns the user repository for this unit of work
func (u *unitOfWork) UserRepository() service.UserRepository {
	if u.userRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.userRepo
}

// ChannelRepository returns the channel repository for this unit of work
func (u *unitOfWork) ChannelRepository() service.ChannelRepository {
	if u.channelRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.channelRepo
}

// Word2VecRepository returns the word2vec repository for this unit of work
func (u *unitOfWork) Word2VecRepository() service.Word2VecRepository {
	if u.word2vecRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.word2vecRepo
}

// NearbyRepository returns the nearby repository for this unit of work
func (u *unitOfWork) NearbyRepository() service.NearbyRepository {
	if u.nearbyRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.nearbyRepo
}

// SimilarityRangeRepository returns the similarity range repository for this unit of work
func (u *unitOfWork) SimilarityRangeRepository() service.SimilarityRangeRepository {
	if u.simRangeRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.simRangeRepo
}

// HintRepository returns the hint repository for this unit of work
func (u *unitOfWork) HintRepository() service.HintRepository {
	if u.hintRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.hintRepo
}

// EventBus returns the transactional event bus for this unit of work
func (u *unitOfWork) EventBus() service.EventPublisher {
	if u.transactionalBus == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalBus
}
