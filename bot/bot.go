package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ikornaselur/similarium/service"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string

	SimilarityCount     int
	TopGuessesToShow    int
	LatestGuessesToShow int
}

// Bot manages the Discord session and routes commands and thread
// messages to the game services
type Bot struct {
	config  Config
	session *discordgo.Session

	gameService    service.GameService
	channelService service.ChannelService
	userService    service.UserService

	similarityCount     int
	topGuessesToShow    int
	latestGuessesToShow int
}

// New creates a bot, opens the Discord connection and registers the
// slash commands
func New(config Config, gameService service.GameService, channelService service.ChannelService, userService service.UserService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		config:              config,
		session:             dg,
		gameService:         gameService,
		channelService:      channelService,
		userService:         userService,
		similarityCount:     config.SimilarityCount,
		topGuessesToShow:    config.TopGuessesToShow,
		latestGuessesToShow: config.LatestGuessesToShow,
	}

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleMessageCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.Info("Bot connected to Discord")
	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}
