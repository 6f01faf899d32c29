package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/internal/domain/entity"
)

type scheduleService struct {
	dm        contract.DataManager
	client    contract.ChannelClient
	source    contract.PuzzleSource
	sessions  contract.PuzzleSessions
	daily     *dailyPuzzle
	scheduler *scheduler
}

func newSchedule(dm contract.DataManager, client contract.ChannelClient, source contract.PuzzleSource, sessions contract.PuzzleSessions, daily *dailyPuzzle) *scheduleService {
	return &scheduleService{
		dm:       dm,
		client:   client,
		source:   source,
		sessions: sessions,
		daily:    daily,
	}
}

// Subscribe replaces the guild's schedule with a new one posting to channelID
// at timing. A prior schedule's live session carries over so members mid-
// puzzle keep their progress. When today's slot already passed and the guild
// has no up-to-date post in this channel, a catch-up post goes out
// immediately in the background.
func (s *scheduleService) Subscribe(ctx context.Context, guildID, channelID string, timing float64) (string, error) {
	schedule := &entity.ScheduledPost{
		GuildID:   guildID,
		ChannelID: channelID,
		Timing:    timing,
	}

	var prior *entity.ScheduledPost
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		prior, err = tx.Schedule().DeleteByGuildID(guildID)
		if err != nil {
			return err
		}
		if prior != nil {
			schedule.CurrentSession = prior.CurrentSession
		}
		return tx.Schedule().Create(schedule)
	})
	if err != nil {
		return "", fmt.Errorf("failed to store schedule: %w", err)
	}

	if s.needsCatchUp(schedule, prior) {
		go func() {
			if err := s.PostNow(context.Background(), schedule); err != nil {
				log.Printf("Guild %s: failed to send catch-up puzzle: %v", guildID, err)
			}
		}()
	}

	s.scheduler.Arm(schedule)

	hours := int(math.Round(schedule.SecondsUntilNext(time.Now()) / 60 / 60))
	hoursStatement := fmt.Sprintf("The next puzzle will be in about %d hours.", hours)

	switch {
	case prior == nil:
		return "Great! This channel is now on the schedule. " + hoursStatement, nil
	case prior.ChannelID != channelID:
		return "Great! This channel will now receive puzzle posts instead of that other one. " + hoursStatement, nil
	case prior.Timing != timing:
		return "Great! This channel will now receive puzzles at a new time. " + hoursStatement, nil
	default:
		return "Great! Nothing will change.", nil
	}
}

// Unsubscribe cancels the guild's job and deletes its schedule, reporting
// whether one existed.
func (s *scheduleService) Unsubscribe(ctx context.Context, guildID string) (bool, error) {
	s.scheduler.Cancel(guildID)

	prior, err := s.dm.Schedule().DeleteByGuildID(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to delete schedule: %w", err)
	}

	return prior != nil, nil
}

// Resume re-arms every stored schedule, sending catch-up posts for guilds
// whose slot already passed today without a post. Called once at startup.
func (s *scheduleService) Resume(ctx context.Context) error {
	schedules, err := s.dm.Schedule().GetAll()
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}

	for _, schedule := range schedules {
		if s.needsCatchUp(schedule, schedule) {
			sched := schedule
			go func() {
				if err := s.PostNow(context.Background(), sched); err != nil {
					log.Printf("Guild %s: failed to send missed puzzle: %v", sched.GuildID, err)
				}
			}()
		}
		s.scheduler.Arm(schedule)
	}

	log.Printf("Re-armed %d stored schedules", len(schedules))
	return nil
}

// needsCatchUp decides whether the guild must get a post right now instead of
// waiting for the next natural occurrence: today's slot has passed and the
// prior record shows no post for today in the same channel. A session the
// collaborator no longer knows counts as no post, failing safe toward
// posting.
func (s *scheduleService) needsCatchUp(schedule, prior *entity.ScheduledPost) bool {
	now := time.Now()
	if entity.DecimalHours(now) < schedule.Timing {
		return false
	}
	if prior == nil || prior.ChannelID != schedule.ChannelID {
		return true
	}
	if prior.CurrentSession == "" {
		return true
	}

	date, ok := s.sessions.Date(prior.CurrentSession)
	if !ok {
		return true
	}
	return entity.DateStamp(date) != entity.DateStamp(now)
}

// PostNow sends today's puzzle to the schedule's channel: waits for the
// shared daily fetch, opens a session, posts the rendered content and records
// the session on the schedule. Used by both the recurring job and the
// catch-up path.
func (s *scheduleService) PostNow(ctx context.Context, schedule *entity.ScheduledPost) error {
	puzzleID, err := s.daily.EnsureToday(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for today's puzzle: %w", err)
	}

	content, err := s.source.Content(puzzleID)
	if err != nil {
		return fmt.Errorf("failed to render puzzle: %w", err)
	}

	sessionID, err := s.sessions.Start(puzzleID, schedule.GuildID, schedule.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to start puzzle session: %w", err)
	}

	messageID, err := s.client.SendMessage(schedule.ChannelID, content)
	if err != nil {
		return fmt.Errorf("failed to send puzzle message: %w", err)
	}

	if err := s.dm.Session().SetMessageID(sessionID, messageID); err != nil {
		log.Printf("Guild %s: failed to link puzzle message to session: %v", schedule.GuildID, err)
	}

	if err := s.dm.Schedule().UpdateCurrentSession(schedule.GuildID, sessionID); err != nil {
		return fmt.Errorf("failed to record puzzle session: %w", err)
	}

	log.Printf("Guild %s: posted puzzle %s to channel %s", schedule.GuildID, puzzleID, schedule.ChannelID)
	return nil
}
