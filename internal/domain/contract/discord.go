package contract

// ChannelClient defines the interface for Discord channel operations
// This allows mocking in tests while keeping the real implementation simple
type ChannelClient interface {
	// SendMessage posts content to a channel and returns the message id
	SendMessage(channelID, content string) (string, error)

	// EditMessage replaces the content of a previously sent message
	EditMessage(channelID, messageID, content string) error

	// AddReaction applies an emoji reaction to a message
	AddReaction(channelID, messageID, emoji string) error
}
