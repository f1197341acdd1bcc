package bot

import (
	"context"

	"github.com/ikornaselur/similarium/events"
	log "github.com/sirupsen/logrus"
)

// RegisterBotSubscriptions wires the bot's event handlers to the game
// lifecycle events the services publish after commit
func RegisterBotSubscriptions(bus *events.Bus, bot *Bot) {
	bus.Subscribe(events.EventTypeSecretFound, func(ctx context.Context, event events.Event) {
		found, ok := event.(events.SecretFoundEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"gameID":     found.GameID,
			"channelID":  found.ChannelID,
			"userID":     found.UserID,
			"winnerRank": found.WinnerRank,
		}).Info("Secret found")
	})

	bus.Subscribe(events.EventTypeGameEnded, func(ctx context.Context, event events.Event) {
		ended, ok := event.(events.GameEndedEvent)
		if !ok {
			return
		}
		if ended.SecretFound {
			return
		}
		// Nobody solved it, let the channel know before the next game
		bot.replyInChannel(ended.ChannelID, "Nobody found the secret today! A new game is coming up.")
	})

	log.Info("Bot event subscriptions registered")
}

func (b *Bot) replyInChannel(channelID, content string) {
	if _, err := b.session.ChannelMessageSend(channelID, content); err != nil {
		log.Errorf("Error sending message to channel %s: %v", channelID, err)
	}
}
