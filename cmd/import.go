package cmd

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/ikornaselur/similarium/config"
	"github.com/ikornaselur/similarium/database"
	"github.com/ikornaselur/similarium/events"
	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/repository"
	"github.com/ikornaselur/similarium/service"
	"github.com/ikornaselur/similarium/similarity"
	"github.com/ikornaselur/similarium/words"
)

// ImportVectors loads a word embedding dump into the database and
// precomputes the neighbor tables the game reads at runtime.
//
// The dump format is one word per line: the word, a space, and the
// base64 of its little-endian float32 vector. For every secret
// candidate the full vocabulary is scored against it, the closest
// similarityCount words become its nearby rows and the similarity
// range statistics are derived from the same ranking. Each secret's
// rows are written in one transaction so a partial import never
// leaves a secret half-populated.
func ImportVectors(ctx context.Context, path string) error {
	cfg := config.Get()

	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	vectors, err := readVectorDump(path)
	if err != nil {
		return err
	}
	log.Printf("Read %d vectors from %s", len(vectors), path)

	nearbyCache, err := repository.NewNearbyCache(cfg.NearbyCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create nearby cache: %w", err)
	}
	uowFactory := repository.NewUnitOfWorkFactory(db, events.NewBus(), nearbyCache)

	if err := importWordVectors(ctx, uowFactory, vectors); err != nil {
		return err
	}
	log.Printf("Inserted %d word vectors", len(vectors))

	for i, secret := range words.TargetWords() {
		secretVec, ok := vectors[secret]
		if !ok {
			return fmt.Errorf("no vector for secret candidate %q", secret)
		}

		if err := precomputeNeighbors(ctx, uowFactory, secret, secretVec, vectors, cfg.SimilarityCount); err != nil {
			return err
		}

		if (i+1)%100 == 0 {
			log.Printf("Precomputed neighbors for %d/%d secret candidates", i+1, words.TargetWordCount())
		}
	}

	log.Printf("Import complete: %d secret candidates", words.TargetWordCount())
	return nil
}

// importWordVectors stores the whole vocabulary in one transaction
func importWordVectors(ctx context.Context, uowFactory service.UnitOfWorkFactory, vectors map[string][]float64) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	for word, vec := range vectors {
		w2v := &models.Word2Vec{Word: word, Vec: similarity.Truncate(similarity.Encode(vec))}
		if err := uow.Word2VecRepository().Insert(ctx, w2v); err != nil {
			return fmt.Errorf("failed to insert vector for %q: %w", word, err)
		}
	}

	return uow.Commit()
}

// neighborScore pairs a vocabulary word with its similarity to one secret
type neighborScore struct {
	word       string
	similarity float64
}

// precomputeNeighbors ranks the whole vocabulary against one secret and
// stores its nearby rows and similarity range in one transaction.
//
// Percentiles run from similarityCount for the secret itself down to 1
// for the farthest tracked neighbor. The range statistics are raw
// cosine similarities of the nearest, tenth-nearest and farthest
// tracked neighbors.
func precomputeNeighbors(
	ctx context.Context,
	uowFactory service.UnitOfWorkFactory,
	secret string,
	secretVec []float64,
	vectors map[string][]float64,
	similarityCount int,
) error {
	scores := make([]neighborScore, 0, len(vectors))
	for word, vec := range vectors {
		if word == secret {
			continue
		}
		scores = append(scores, neighborScore{word: word, similarity: similarity.CosSim(secretVec, vec)})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].similarity > scores[j].similarity
	})

	tracked := similarityCount - 1
	if len(scores) < tracked {
		return fmt.Errorf("vocabulary too small: %d words for %d tracked neighbors", len(scores), tracked)
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	err := uow.NearbyRepository().Insert(ctx, &models.Nearby{
		Word:       secret,
		Neighbor:   secret,
		Similarity: 100,
		Percentile: similarityCount,
	})
	if err != nil {
		return fmt.Errorf("failed to insert self row for %q: %w", secret, err)
	}

	for j, score := range scores[:tracked] {
		err := uow.NearbyRepository().Insert(ctx, &models.Nearby{
			Word:       secret,
			Neighbor:   score.word,
			Similarity: score.similarity * 100,
			Percentile: similarityCount - 1 - j,
		})
		if err != nil {
			return fmt.Errorf("failed to insert neighbor %q of %q: %w", score.word, secret, err)
		}
	}

	sr := &models.SimilarityRange{
		Word:  secret,
		Top:   scores[0].similarity,
		Top10: scores[9].similarity,
		Rest:  scores[tracked-1].similarity,
	}
	if err := uow.SimilarityRangeRepository().Insert(ctx, sr); err != nil {
		return fmt.Errorf("failed to insert similarity range for %q: %w", secret, err)
	}

	return uow.Commit()
}

// readVectorDump parses a "word base64(vector)" dump file
func readVectorDump(path string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector dump: %w", err)
	}
	defer f.Close()

	vectors := make(map[string][]float64)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		word, encoded, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("malformed line %q", line)
		}

		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("bad vector encoding for %q: %w", word, err)
		}

		vec, err := similarity.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("bad vector for %q: %w", word, err)
		}

		vectors[strings.ToLower(word)] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vector dump: %w", err)
	}

	return vectors, nil
}
