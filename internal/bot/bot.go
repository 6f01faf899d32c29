package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/hivebound/beebot/internal/domain/service"
)

// Bot wires the Discord session to the schedule and guess services.
type Bot struct {
	session  *discordgo.Session
	services *service.Services
	commands []*discordgo.ApplicationCommand
}

// NewSession creates the Discord session with the intents the bot needs.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return session, nil
}

func New(session *discordgo.Session, services *service.Services) *Bot {
	b := &Bot{
		session:  session,
		services: services,
	}
	b.registerHandlers()
	return b
}

// Start opens the Discord connection and registers the slash commands.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Printf("Connected to Discord as %s", b.session.State.User.Username)

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// Stop closes the Discord session.
func (b *Bot) Stop() error {
	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

func (b *Bot) registerHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleMessage)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Bot is ready in %d guilds", len(r.Guilds))
	})
	b.session.AddHandler(b.handleGuildDelete)
}

// handleMessage feeds guild messages to the guess router.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	b.services.Guess.Route(context.Background(), m.GuildID, m.ChannelID, m.ID, m.Content)
}

// handleGuildDelete drops the schedule when the bot is removed from a guild.
func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		// Outage, not a removal.
		return
	}

	existed, err := b.services.Schedule.Unsubscribe(context.Background(), g.ID)
	if err != nil {
		log.Printf("Failed to drop schedule for removed guild %s: %v", g.ID, err)
		return
	}
	if existed {
		log.Printf("Dropped schedule for removed guild %s", g.ID)
	}
}
