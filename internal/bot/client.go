package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/hivebound/beebot/internal/domain/contract"
)

// Client implements contract.ChannelClient over a discordgo session.
type Client struct {
	session *discordgo.Session
}

func NewClient(session *discordgo.Session) contract.ChannelClient {
	return &Client{session: session}
}

func (c *Client) SendMessage(channelID, content string) (string, error) {
	msg, err := c.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return msg.ID, nil
}

func (c *Client) EditMessage(channelID, messageID, content string) error {
	if _, err := c.session.ChannelMessageEdit(channelID, messageID, content); err != nil {
		return fmt.Errorf("failed to edit message %s: %w", messageID, err)
	}
	return nil
}

func (c *Client) AddReaction(channelID, messageID, emoji string) error {
	if err := c.session.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		return fmt.Errorf("failed to react to message %s: %w", messageID, err)
	}
	return nil
}
