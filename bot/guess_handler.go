package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ikornaselur/similarium/service"
	"github.com/ikornaselur/similarium/words"
	log "github.com/sirupsen/logrus"
)

var guessPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// handleMessageCreate treats every plain word posted in a game thread
// as a guess
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	word := strings.TrimSpace(m.Content)
	if !guessPattern.MatchString(word) {
		return
	}

	thread, err := b.channel(s, m.ChannelID)
	if err != nil {
		log.Errorf("Error resolving channel %s: %v", m.ChannelID, err)
		return
	}
	if !thread.IsThread() {
		return
	}

	ctx := context.Background()

	game, err := b.gameService.GetGameByThread(ctx, thread.ParentID, m.ChannelID)
	if err != nil {
		log.Errorf("Error looking up game for thread %s: %v", m.ChannelID, err)
		return
	}
	if game == nil {
		return
	}
	if !game.Active {
		b.replyInThread(s, m.ChannelID, fmt.Sprintf(
			":warning: The game is over, <@%s>! A new game will start soon. :warning:", m.Author.ID))
		return
	}

	word = words.Americanize(strings.ToLower(word))

	if _, err := b.userService.GetOrCreateUser(ctx, m.Author.ID, m.Author.Username, m.Author.AvatarURL("")); err != nil {
		log.Errorf("Error upserting user %s: %v", m.Author.ID, err)
		return
	}

	result, err := b.gameService.AddGuess(ctx, game.ID, m.Author.ID, word)
	switch {
	case errors.Is(err, service.ErrUserAlreadyWon):
		b.replyInThread(s, m.ChannelID, fmt.Sprintf(
			":warning: You already got the winning word, <@%s>! Let the others have a try! :warning:", m.Author.ID))
		return
	case errors.Is(err, service.ErrInvalidWord):
		b.replyInThread(s, m.ChannelID, fmt.Sprintf(
			":warning: \"%s\" is not a valid word! :warning:", word))
		return
	case err != nil:
		log.Errorf("Error adding guess to game %d: %v", game.ID, err)
		return
	}

	if result.IsSecret {
		if _, err := s.ChannelMessageSend(game.ChannelID, SecretFoundMessage(m.Author.ID)); err != nil {
			log.Errorf("Error announcing winner for game %d: %v", game.ID, err)
		}
	} else if result.Celebration != service.CelebrationNone {
		message := CelebrationMessage(result.Celebration, m.Author.ID, result.Guess.Word)
		if message != "" {
			b.replyInThread(s, m.ChannelID, message)
		}
	}

	if err := b.refreshGameMessage(ctx, game); err != nil {
		log.Errorf("Error updating game %d message: %v", game.ID, err)
	}
}

// channel resolves a channel from the session cache, falling back to
// the API on a cache miss
func (b *Bot) channel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch, nil
	}
	return s.Channel(channelID)
}

func (b *Bot) replyInThread(s *discordgo.Session, threadID, content string) {
	if _, err := s.ChannelMessageSend(threadID, content); err != nil {
		log.Errorf("Error sending message to thread %s: %v", threadID, err)
	}
}
