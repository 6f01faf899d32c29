package service

import (
	"time"

	"github.com/hivebound/beebot/internal/domain/contract"
)

type Services struct {
	Schedule  *scheduleService
	Guess     *guessService
	Daily     *dailyPuzzle
	Scheduler *scheduler
}

func New(dm contract.DataManager, client contract.ChannelClient, source contract.PuzzleSource, sessions contract.PuzzleSessions, retryBackoff time.Duration) *Services {
	daily := newDailyPuzzle(source, retryBackoff)
	scheduleService := newSchedule(dm, client, source, sessions, daily)
	scheduler := newScheduler(dm, daily, scheduleService.PostNow)
	scheduleService.scheduler = scheduler

	return &Services{
		Schedule:  scheduleService,
		Guess:     newGuess(dm, sessions, client),
		Daily:     daily,
		Scheduler: scheduler,
	}
}
