package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ikornaselur/similarium/events"
	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/similarity"
	"github.com/ikornaselur/similarium/words"
	log "github.com/sirupsen/logrus"
)

// gameService implements the GameService interface
type gameService struct {
	uowFactory      UnitOfWorkFactory
	locks           gameLocks
	similarityCount int
	hintThreshold   int
}

// NewGameService creates a new game service
func NewGameService(uowFactory UnitOfWorkFactory, similarityCount, hintThreshold int) GameService {
	return &gameService{
		uowFactory:      uowFactory,
		similarityCount: similarityCount,
		hintThreshold:   hintThreshold,
	}
}

// CreateGame starts a new game in a channel for a puzzle number. The
// secret comes from the channel's deterministic shuffle of the target
// word list and must have a vector, since the whole game scores against
// it.
func (s *gameService) CreateGame(ctx context.Context, channelID string, puzzleNumber int) (*models.Game, error) {
	secret := words.GetSecret(channelID, puzzleNumber)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	w2v, err := uow.Word2VecRepository().GetByWord(ctx, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to check secret vector: %w", err)
	}
	if w2v == nil {
		return nil, fmt.Errorf("secret %q has no vector, word list and vector data are out of sync", secret)
	}

	game := &models.Game{
		ChannelID:    channelID,
		PuzzleNumber: puzzleNumber,
		Date:         words.GetPuzzleDate(puzzleNumber),
		Active:       true,
		Secret:       secret,
	}

	if err := uow.GameRepository().Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	uow.EventBus().Publish(events.GameStartedEvent{
		GameID:       game.ID,
		ChannelID:    channelID,
		PuzzleNumber: puzzleNumber,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"gameID":       game.ID,
		"channelID":    channelID,
		"puzzleNumber": puzzleNumber,
	}).Info("Started new game")

	return game, nil
}

// SetGameThread records the message a game was posted as
func (s *gameService) SetGameThread(ctx context.Context, gameID int64, threadID string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.GameRepository().SetThreadID(ctx, gameID, threadID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGameByThread retrieves the game posted as a specific message
func (s *gameService) GetGameByThread(ctx context.Context, channelID, threadID string) (*models.Game, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByChannelThread(ctx, channelID, threadID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return game, nil
}

// GetActiveGames returns the active games in a channel, oldest first
func (s *gameService) GetActiveGames(ctx context.Context, channelID string) ([]*models.Game, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	games, err := uow.GameRepository().GetActiveInChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return games, nil
}

// AddGuess scores and records a guess for a user in a game.
//
// Resolution order: the winner precondition first, then the win branch
// (similarity pinned at 100, percentile at the neighbor set size, winner
// recorded before the guess), then the nearby lookup with direct vector
// scoring as fallback, then deduplication against an earlier guess of
// the same word. Submissions to the same game are serialized so the
// sequence index read and the insert see the same ledger.
func (s *gameService) AddGuess(ctx context.Context, gameID int64, userID, word string) (*GuessResult, error) {
	word = normalizeGuess(word)

	unlock := s.locks.Lock(gameID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	existingWin, err := uow.WinnerRepository().GetByGameAndUser(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}
	if existingWin != nil {
		return nil, ErrUserAlreadyWon
	}

	guessCount, err := uow.GuessRepository().CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	result := &GuessResult{}
	var score float64
	var percentile int

	if game.IsSecret(word) {
		// The secret is never in its own neighbor set, so the win
		// branch skips the lookup entirely
		score = 100.0
		percentile = s.similarityCount

		priorWinners, err := uow.WinnerRepository().CountByGame(ctx, gameID)
		if err != nil {
			return nil, err
		}

		winner := &models.GameWinner{
			GameID:   gameID,
			UserID:   userID,
			GuessIdx: guessCount + 1,
		}
		if err := uow.WinnerRepository().Create(ctx, winner); err != nil {
			return nil, err
		}

		result.IsSecret = true
		result.WinnerRank = priorWinners + 1
	} else {
		nearby, err := uow.NearbyRepository().GetByWordAndNeighbor(ctx, game.Secret, word)
		if err != nil {
			return nil, err
		}

		if nearby != nil {
			score = nearby.Similarity
			percentile = nearby.Percentile
		} else {
			candidate, err := uow.Word2VecRepository().GetByWord(ctx, word)
			if err != nil {
				return nil, err
			}
			if candidate == nil {
				return nil, ErrInvalidWord
			}

			secretVec, err := uow.Word2VecRepository().GetByWord(ctx, game.Secret)
			if err != nil {
				return nil, err
			}
			if secretVec == nil {
				return nil, fmt.Errorf("secret %q for game %d has no vector, word list and vector data are out of sync", game.Secret, gameID)
			}

			sv, err := secretVec.ExpandedVec()
			if err != nil {
				return nil, fmt.Errorf("failed to decode secret vector: %w", err)
			}
			cv, err := candidate.ExpandedVec()
			if err != nil {
				return nil, fmt.Errorf("failed to decode vector for %q: %w", word, err)
			}

			score = similarity.Similarity(sv, cv)
			percentile = 0
		}
	}

	now := words.TimestampMS(time.Now().UTC())

	existing, err := uow.GuessRepository().GetByGameAndWord(ctx, gameID, word)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// Piling on an already-guessed word only refreshes recency and
		// credits the latest submitter
		if err := uow.GuessRepository().Touch(ctx, existing.ID, now, userID); err != nil {
			return nil, err
		}
		existing.Updated = now
		existing.LatestGuessUserID = userID

		result.Guess = existing
		result.IsNew = false
	} else {
		guess := &models.Guess{
			GameID:            gameID,
			Updated:           now,
			UserID:            userID,
			LatestGuessUserID: userID,
			Word:              word,
			Percentile:        percentile,
			Similarity:        score,
			Idx:               guessCount + 1,
		}
		if err := uow.GuessRepository().Create(ctx, guess); err != nil {
			return nil, err
		}

		result.Guess = guess
		result.IsNew = true

		if !result.IsSecret && guess.InTopRange() {
			highestOther, err := uow.GuessRepository().TopPercentileExcludingWord(ctx, gameID, word)
			if err != nil {
				return nil, err
			}
			result.Celebration = determineCelebration(guess, highestOther)
		}
	}

	uow.EventBus().Publish(events.GuessSubmittedEvent{
		GameID:    gameID,
		ChannelID: game.ChannelID,
		UserID:    userID,
		Word:      word,
		IsNew:     result.IsNew,
	})
	if result.IsSecret {
		uow.EventBus().Publish(events.SecretFoundEvent{
			GameID:     gameID,
			ChannelID:  game.ChannelID,
			UserID:     userID,
			WinnerRank: result.WinnerRank,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// TopGuesses returns the closest guesses in a game
func (s *gameService) TopGuesses(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	guesses, err := uow.GuessRepository().TopByGame(ctx, gameID, limit)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return guesses, nil
}

// LatestGuesses returns the most recently submitted guesses in a game
func (s *gameService) LatestGuesses(ctx context.Context, gameID int64, limit int) ([]*models.Guess, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	guesses, err := uow.GuessRepository().LatestByGame(ctx, gameID, limit)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return guesses, nil
}

// WinnersMessages returns one recap line per winner, in arrival order.
// The first winner's line shows their raw guess index; every later
// winner's shows their index minus one, so the recap does not give away
// how many guesses the first solve took.
func (s *gameService) WinnersMessages(ctx context.Context, gameID int64) ([]string, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	winners, err := uow.WinnerRepository().GetByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	medals := []string{":first_place_medal:", ":second_place_medal:", ":third_place_medal:"}

	messages := make([]string, 0, len(winners))
	for i, winner := range winners {
		guessIdx := winner.GuessIdx
		if i > 0 {
			guessIdx--
		}

		message := fmt.Sprintf("<@%s> got the secret on guess %d!", winner.UserID, guessIdx)
		if i < len(medals) {
			message = fmt.Sprintf("%s %s", medals[i], message)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// SimilarityRange returns the similarity statistics for a game's secret
func (s *gameService) SimilarityRange(ctx context.Context, gameID int64) (*models.SimilarityRange, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	sr, err := uow.SimilarityRangeRepository().GetByWord(ctx, game.Secret)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return sr, nil
}

// TakeHint records the hint request and returns the secret's neighbor a
// fixed distance below the top of the tracked range. Asking twice keeps
// the first request on record and hands out the same word.
func (s *gameService) TakeHint(ctx context.Context, gameID int64, userID string) (*models.Nearby, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	hintPercentile := s.similarityCount - s.hintThreshold
	nearby, err := uow.NearbyRepository().GetByWordAndPercentile(ctx, game.Secret, hintPercentile)
	if err != nil {
		return nil, err
	}
	if nearby == nil {
		return nil, fmt.Errorf("no hint available for game %d at percentile %d", gameID, hintPercentile)
	}

	guessCount, err := uow.GuessRepository().CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	seeker := &models.GameHintSeeker{
		GameID:   gameID,
		UserID:   userID,
		GuessIdx: guessCount,
		Created:  words.TimestampMS(time.Now().UTC()),
	}
	if err := uow.HintRepository().Create(ctx, seeker); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nearby, nil
}

// HintSeekers returns who took a hint in a game, in the order they asked
func (s *gameService) HintSeekers(ctx context.Context, gameID int64) ([]*models.GameHintSeeker, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	seekers, err := uow.HintRepository().GetByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return seekers, nil
}

// EndGame finishes a game. The active flag flips true to false exactly
// once; ending an already finished game is an error.
func (s *gameService) EndGame(ctx context.Context, gameID int64) (*models.Game, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}
	if !game.Active {
		return nil, fmt.Errorf("game %d is already finished", gameID)
	}

	if err := uow.GameRepository().SetInactive(ctx, gameID); err != nil {
		return nil, err
	}
	game.Active = false

	winnerCount, err := uow.WinnerRepository().CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	uow.EventBus().Publish(events.GameEndedEvent{
		GameID:      gameID,
		ChannelID:   game.ChannelID,
		SecretFound: winnerCount > 0,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"gameID":      gameID,
		"channelID":   game.ChannelID,
		"winnerCount": winnerCount,
	}).Info("Ended game")

	return game, nil
}
