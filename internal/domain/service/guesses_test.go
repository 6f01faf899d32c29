package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/internal/domain/entity"
	"go.uber.org/mock/gomock"
)

func Test_guessService_Route(t *testing.T) {
	schedule := &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 7, CurrentSession: "sess-1"}

	t.Run("Should relay reactions for a correct guess and update the post", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(schedule, nil)
		m.mockSessions.EXPECT().RecordGuess(gomock.Any(), "sess-1", "gearbox").
			Return([]contract.Reaction{"✅", "🎉"}, nil)
		m.mockClient.EXPECT().AddReaction("c1", "msg-1", "✅").Return(nil)
		m.mockClient.EXPECT().AddReaction("c1", "msg-1", "🎉").Return(nil)
		m.mockSessions.EXPECT().Progress("sess-1").Return("updated content", "post-1", true)
		m.mockClient.EXPECT().EditMessage("c1", "post-1", "updated content").Return(nil)

		services := newTestServices(t, m)
		services.Guess.Route(context.Background(), "g1", "c1", "msg-1", "gearbox")
	})

	t.Run("Should not edit the post for a wrong guess", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(schedule, nil)
		m.mockSessions.EXPECT().RecordGuess(gomock.Any(), "sess-1", "zzzz").
			Return([]contract.Reaction{"❌"}, nil)
		m.mockClient.EXPECT().AddReaction("c1", "msg-1", "❌").Return(nil)

		services := newTestServices(t, m)
		services.Guess.Route(context.Background(), "g1", "c1", "msg-1", "zzzz")
	})

	t.Run("Should ignore messages from a different channel", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(schedule, nil)

		services := newTestServices(t, m)
		services.Guess.Route(context.Background(), "g1", "some-other-channel", "msg-1", "gearbox")
	})

	t.Run("Should ignore guilds without a schedule", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(nil, nil)

		services := newTestServices(t, m)
		services.Guess.Route(context.Background(), "g1", "c1", "msg-1", "gearbox")
	})

	t.Run("Should ignore guesses before the first post of the day", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		idle := &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 7}
		m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(idle, nil)

		services := newTestServices(t, m)
		services.Guess.Route(context.Background(), "g1", "c1", "msg-1", "gearbox")
	})

	t.Run("Should swallow session errors", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(schedule, nil)
		m.mockSessions.EXPECT().RecordGuess(gomock.Any(), "sess-1", "gearbox").
			Return(nil, fmt.Errorf("session expired"))

		services := newTestServices(t, m)
		services.Guess.Route(context.Background(), "g1", "c1", "msg-1", "gearbox")
	})
}
