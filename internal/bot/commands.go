package bot

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/hivebound/beebot/internal/domain"
)

// Slash command definitions
func (b *Bot) getCommandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "start_puzzling",
			Description: "Start receiving Spelling Bees here!",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "What time? This is based on the New York Times' time zone.",
					Required:    false,
					Choices:     timingChoices(),
				},
			},
		},
		{
			Name:        "stop_puzzling",
			Description: "Stop receiving Spelling Bees here!",
		},
	}
}

func timingChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(domain.TimingOrder))
	for i, name := range domain.TimingOrder {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		}
	}
	return choices
}

func (b *Bot) registerCommands() error {
	for _, def := range b.getCommandDefinitions() {
		cmd, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", def)
		if err != nil {
			return err
		}
		b.commands = append(b.commands, cmd)
	}
	log.Printf("Registered %d slash commands", len(b.commands))
	return nil
}

// handleInteraction processes slash command interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case "start_puzzling":
		b.handleStartPuzzling(i, data)
	case "stop_puzzling":
		b.handleStopPuzzling(i)
	}
}

// resolveTiming maps the command's optional time choice to its decimal hour,
// falling back to the default when the option is absent.
func resolveTiming(options []*discordgo.ApplicationCommandInteractionDataOption) (float64, bool) {
	choice := domain.DefaultTiming
	for _, opt := range options {
		if opt.Name == "time" {
			choice = opt.StringValue()
		}
	}

	timing, ok := domain.TimingChoices[choice]
	return timing, ok
}

func (b *Bot) handleStartPuzzling(i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	timing, ok := resolveTiming(data.Options)
	if !ok {
		b.respond(i, "I don't know that time of day, sorry!")
		return
	}

	status, err := b.services.Schedule.Subscribe(context.Background(), i.GuildID, i.ChannelID, timing)
	if err != nil {
		log.Printf("Guild %s: subscribe failed: %v", i.GuildID, err)
		b.respond(i, "Something went wrong setting up the schedule, please try again.")
		return
	}
	b.respond(i, status)
}

func (b *Bot) handleStopPuzzling(i *discordgo.InteractionCreate) {
	existed, err := b.services.Schedule.Unsubscribe(context.Background(), i.GuildID)
	if err != nil {
		log.Printf("Guild %s: unsubscribe failed: %v", i.GuildID, err)
		b.respond(i, "Something went wrong, please try again.")
		return
	}

	if existed {
		b.respond(i, "Okay! This channel will no longer receive Spelling Bee posts.")
	} else {
		b.respond(i, "This channel was already not receiving Spelling Bee posts!")
	}
}

func (b *Bot) respond(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
