package contract

import "context"

// ScheduleService is the entry point for managing a guild's subscription.
type ScheduleService interface {
	Subscribe(ctx context.Context, guildID, channelID string, timing float64) (string, error)
	Unsubscribe(ctx context.Context, guildID string) (bool, error)
}

// GuessRouter relays guild messages to the guild's active puzzle session.
type GuessRouter interface {
	Route(ctx context.Context, guildID, channelID, messageID, text string)
}
