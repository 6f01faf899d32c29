package service

import (
	"context"
	"log"

	"github.com/hivebound/beebot/internal/domain/contract"
)

type guessService struct {
	dm       contract.DataManager
	sessions contract.PuzzleSessions
	client   contract.ChannelClient
}

func newGuess(dm contract.DataManager, sessions contract.PuzzleSessions, client contract.ChannelClient) *guessService {
	return &guessService{
		dm:       dm,
		sessions: sessions,
		client:   client,
	}
}

// Route forwards a guild message to the guild's active puzzle session and
// mirrors the resulting reactions onto the message. Messages from channels
// without a schedule, from the wrong channel, or before the first post of the
// day are dropped.
func (s *guessService) Route(ctx context.Context, guildID, channelID, messageID, text string) {
	schedule, err := s.dm.Schedule().GetByGuildID(guildID)
	if err != nil {
		log.Printf("Guild %s: failed to look up schedule for guess: %v", guildID, err)
		return
	}
	if schedule == nil || schedule.ChannelID != channelID {
		return
	}
	if schedule.CurrentSession == "" {
		// Expected race: a message can land before the first post of the day.
		log.Printf("Guild %s: guess arrived before any puzzle post, ignoring", guildID)
		return
	}

	reactions, err := s.sessions.RecordGuess(ctx, schedule.CurrentSession, text)
	if err != nil {
		log.Printf("Guild %s: failed to record guess: %v", guildID, err)
		return
	}

	scored := false
	for _, reaction := range reactions {
		if reaction == "✅" || reaction == "🎉" {
			scored = true
		}
		if err := s.client.AddReaction(channelID, messageID, string(reaction)); err != nil {
			log.Printf("Guild %s: failed to react to guess %s: %v", guildID, messageID, err)
		}
	}

	if scored {
		if content, postID, ok := s.sessions.Progress(schedule.CurrentSession); ok && postID != "" {
			if err := s.client.EditMessage(channelID, postID, content); err != nil {
				log.Printf("Guild %s: failed to update puzzle post: %v", guildID, err)
			}
		}
	}
}
