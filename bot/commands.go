package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/words"
	log "github.com/sirupsen/logrus"
)

const helpText = `**Similarium** posts a daily word puzzle. Guess the secret word by ` +
	`replying in the game thread; every guess is scored by how close its meaning ` +
	`is to the secret.

**Commands**
` + "`/similarium start <hour>`" + ` - Post a puzzle in this channel every day at the given hour (UTC)
` + "`/similarium stop`" + ` - Stop the daily puzzle in this channel
` + "`/similarium manual`" + ` - Start a one-off puzzle in this channel right now
` + "`/similarium hint`" + ` - Get a word close to the secret (everyone will see you asked)
` + "`/similarium help`" + ` - Show this message`

// registerCommands registers the slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "similarium",
			Description: "Daily semantic word guessing game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Post a daily puzzle in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "hour",
							Description: "Hour of day (UTC, 0-23) to post the puzzle",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop the daily puzzle in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "manual",
					Description: "Start a one-off puzzle in this channel right now",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hint",
					Description: "Get a word close to today's secret",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "How to play",
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

// handleCommands routes slash commands to the subcommand handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != "similarium" {
		return
	}
	if len(data.Options) == 0 {
		respondEphemeral(s, i, helpText)
		return
	}

	sub := data.Options[0]
	switch sub.Name {
	case "start":
		b.handleStart(s, i, int(sub.Options[0].IntValue()))
	case "stop":
		b.handleStop(s, i)
	case "manual":
		b.handleManual(s, i)
	case "hint":
		b.handleHint(s, i)
	default:
		respondEphemeral(s, i, helpText)
	}
}

func (b *Bot) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, hour int) {
	ctx := context.Background()

	_, err := b.channelService.Subscribe(ctx, i.ChannelID, i.GuildID, hour)
	if err != nil {
		log.Errorf("Error subscribing channel %s: %v", i.ChannelID, err)
		respondEphemeral(s, i, fmt.Sprintf(":warning: Could not start the daily puzzle: %v", err))
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(
		"Daily puzzle scheduled for this channel at %02d:00 UTC. Starting today's puzzle now!", hour))

	active, err := b.gameService.GetActiveGames(ctx, i.ChannelID)
	if err != nil {
		log.Errorf("Error checking active games in channel %s: %v", i.ChannelID, err)
		return
	}
	if len(active) == 0 {
		if err := b.startGame(ctx, i.ChannelID); err != nil {
			log.Errorf("Error starting game in channel %s: %v", i.ChannelID, err)
		}
	}
}

func (b *Bot) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.channelService.Unsubscribe(context.Background(), i.ChannelID); err != nil {
		log.Errorf("Error unsubscribing channel %s: %v", i.ChannelID, err)
		respondEphemeral(s, i, ":warning: Could not stop the daily puzzle.")
		return
	}
	respondEphemeral(s, i, "The daily puzzle has been stopped in this channel.")
}

func (b *Bot) handleManual(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	active, err := b.gameService.GetActiveGames(ctx, i.ChannelID)
	if err != nil {
		log.Errorf("Error checking active games in channel %s: %v", i.ChannelID, err)
		respondEphemeral(s, i, ":warning: Something went wrong. Please try again later.")
		return
	}
	if len(active) > 0 {
		respondEphemeral(s, i, ":warning: There is already an active puzzle in this channel.")
		return
	}

	respondEphemeral(s, i, "Starting a puzzle in this channel!")

	if err := b.startGame(ctx, i.ChannelID); err != nil {
		log.Errorf("Error starting manual game in channel %s: %v", i.ChannelID, err)
	}
}

func (b *Bot) handleHint(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	game, err := b.activeGame(ctx, i.ChannelID)
	if err != nil {
		log.Errorf("Error finding active game in channel %s: %v", i.ChannelID, err)
		respondEphemeral(s, i, ":warning: Something went wrong. Please try again later.")
		return
	}
	if game == nil {
		respondEphemeral(s, i, ":warning: There is no active puzzle in this channel.")
		return
	}

	userID := interactionUserID(i)
	hint, err := b.gameService.TakeHint(ctx, game.ID, userID)
	if err != nil {
		log.Errorf("Error taking hint for game %d: %v", game.ID, err)
		respondEphemeral(s, i, ":warning: Something went wrong. Please try again later.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(
		"The hint is: **%s** (%d/%d). Submit it in the thread if you want to use it!",
		hint.Neighbor, hint.Percentile, b.similarityCount))

	if err := b.refreshGameMessage(ctx, game); err != nil {
		log.Errorf("Error updating game %d message after hint: %v", game.ID, err)
	}
}

// startGame creates today's game, posts it and records the message it
// was posted as
func (b *Bot) startGame(ctx context.Context, channelID string) error {
	puzzleNumber := words.GetPuzzleNumber(time.Now().UTC())

	game, err := b.gameService.CreateGame(ctx, channelID, puzzleNumber)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	messageID, err := b.PostGame(ctx, &models.Channel{ID: channelID}, game)
	if err != nil {
		return err
	}
	game.ThreadID = messageID

	if err := b.gameService.SetGameThread(ctx, game.ID, messageID); err != nil {
		return fmt.Errorf("failed to record game message: %w", err)
	}

	return nil
}

// activeGame returns the oldest active game in a channel, or nil
func (b *Bot) activeGame(ctx context.Context, channelID string) (*models.Game, error) {
	active, err := b.gameService.GetActiveGames(ctx, channelID)
	if err != nil || len(active) == 0 {
		return nil, err
	}
	return active[0], nil
}

// interactionUserID works for both guild and DM interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending interaction response: %v", err)
	}
}
