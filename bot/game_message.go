package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ikornaselur/similarium/models"
	log "github.com/sirupsen/logrus"
)

// BuildGameMessage renders the full game board as message content: the
// header, the similarity landscape, the win recap once the secret has
// been found, the recent guesses while the game runs and the top
// guesses board.
func (b *Bot) BuildGameMessage(ctx context.Context, game *models.Game) (string, error) {
	sr, err := b.gameService.SimilarityRange(ctx, game.ID)
	if err != nil {
		return "", fmt.Errorf("failed to get similarity range: %w", err)
	}
	if sr == nil {
		return "", fmt.Errorf("no similarity range for game %d", game.ID)
	}

	winners, err := b.gameService.WinnersMessages(ctx, game.ID)
	if err != nil {
		return "", fmt.Errorf("failed to get winner recap: %w", err)
	}

	var sections []string

	sections = append(sections,
		fmt.Sprintf("## %s", HeaderText(game)),
		HeaderBody(sr),
	)

	if finished := b.finishedSection(ctx, game, winners); finished != "" {
		sections = append(sections, finished)
	}

	if game.Active {
		latest, err := b.gameService.LatestGuesses(ctx, game.ID, b.latestGuessesToShow)
		if err != nil {
			return "", fmt.Errorf("failed to get latest guesses: %w", err)
		}
		if len(latest) > 0 {
			lines := []string{"**Latest guesses**"}
			for _, guess := range latest {
				lines = append(lines, GuessLine(guess, game, sr, b.similarityCount, true))
			}
			sections = append(sections, strings.Join(lines, "\n"))
		}
	}

	top, err := b.gameService.TopGuesses(ctx, game.ID, b.topGuessesToShow)
	if err != nil {
		return "", fmt.Errorf("failed to get top guesses: %w", err)
	}
	if len(top) > 0 {
		lines := []string{"**Top guesses**"}
		for _, guess := range top {
			lines = append(lines, GuessLine(guess, game, sr, b.similarityCount, false))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if game.Active {
		sections = append(sections, "_Reply in the thread to guess!_")
	}

	if hints := b.hintSection(ctx, game); hints != "" {
		sections = append(sections, hints)
	}

	return strings.Join(sections, "\n\n"), nil
}

// finishedSection renders the win recap. Empty while the game runs with
// no winner; a found-it banner while it runs with winners; the full
// reveal once the game has finished.
func (b *Bot) finishedSection(ctx context.Context, game *models.Game, winners []string) string {
	secretFound := len(winners) > 0

	if game.Active && !secretFound {
		return ""
	}

	if game.Active {
		lines := append([]string{":tada: **The secret has been found!** :tada:"}, winners...)
		return strings.Join(lines, "\n")
	}

	if secretFound {
		lines := append([]string{
			":tada: **The secret was found!** :tada:",
			fmt.Sprintf("The secret word of the day was: **%s**", game.Secret),
		}, winners...)
		return strings.Join(lines, "\n")
	}

	lines := []string{
		":cry: **No one found the word!**",
		fmt.Sprintf("The secret word of the day was: **%s**", game.Secret),
	}

	top, err := b.gameService.TopGuesses(ctx, game.ID, 1)
	if err != nil {
		log.Errorf("Error getting closest guess for game %d: %v", game.ID, err)
	} else if len(top) > 0 {
		lines = append(lines, fmt.Sprintf("The closest guess was made by <@%s>!", top[0].UserID))
	}

	return strings.Join(lines, "\n")
}

// hintSection lists who has taken a hint
func (b *Bot) hintSection(ctx context.Context, game *models.Game) string {
	seekers, err := b.gameService.HintSeekers(ctx, game.ID)
	if err != nil {
		log.Errorf("Error getting hint seekers for game %d: %v", game.ID, err)
		return ""
	}
	if len(seekers) == 0 {
		return ""
	}

	lines := []string{"**Hints**"}
	for _, seeker := range seekers {
		lines = append(lines, fmt.Sprintf("<@%s> saw the hint at guess %d", seeker.UserID, seeker.GuessIdx))
	}

	return strings.Join(lines, "\n")
}

// PostGame posts a new game to its channel, opens the guess thread
// under it and returns the message ID the game lives under
func (b *Bot) PostGame(ctx context.Context, channel *models.Channel, game *models.Game) (string, error) {
	content, err := b.BuildGameMessage(ctx, game)
	if err != nil {
		return "", err
	}

	msg, err := b.session.ChannelMessageSend(channel.ID, content)
	if err != nil {
		return "", fmt.Errorf("failed to post game %d to channel %s: %w", game.ID, channel.ID, err)
	}

	_, err = b.session.MessageThreadStartComplex(channel.ID, msg.ID, &discordgo.ThreadStart{
		Name:                fmt.Sprintf("Similarium #%d", game.PuzzleNumber),
		AutoArchiveDuration: 1440,
	})
	if err != nil {
		log.Errorf("Error starting guess thread for game %d: %v", game.ID, err)
	}

	return msg.ID, nil
}

// FinishGame replaces a finished game's message with the final board
// and secret reveal
func (b *Bot) FinishGame(ctx context.Context, game *models.Game) error {
	return b.refreshGameMessage(ctx, game)
}

// refreshGameMessage re-renders the board under the game's message
func (b *Bot) refreshGameMessage(ctx context.Context, game *models.Game) error {
	if game.ThreadID == "" {
		return fmt.Errorf("game %d has no message to update", game.ID)
	}

	content, err := b.BuildGameMessage(ctx, game)
	if err != nil {
		return err
	}

	_, err = b.session.ChannelMessageEdit(game.ChannelID, game.ThreadID, content)
	if err != nil {
		return fmt.Errorf("failed to update game %d message: %w", game.ID, err)
	}

	return nil
}
