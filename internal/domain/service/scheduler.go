package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/internal/domain/entity"
)

// postFunc sends the day's puzzle to the schedule's channel. Injected so the
// scheduler does not depend on the full schedule service.
type postFunc func(ctx context.Context, schedule *entity.ScheduledPost) error

// scheduler owns one live recurring job per guild. All arm/cancel operations
// go through the jobs map under mu, so two timers can never coexist for one
// guild: arming always cancels the previous job first.
type scheduler struct {
	dm    contract.DataManager
	daily *dailyPuzzle
	post  postFunc

	mu   sync.Mutex
	jobs map[string]*job
}

// job is the runtime state of one guild's recurring timer. timing and
// channelID are the snapshot the job was armed with; the fire path compares
// them against the stored schedule to detect edits that happened while the
// job was asleep.
type job struct {
	guildID   string
	channelID string
	timing    float64
	stopChan  chan struct{}
}

func newScheduler(dm contract.DataManager, daily *dailyPuzzle, post postFunc) *scheduler {
	return &scheduler{
		dm:    dm,
		daily: daily,
		post:  post,
		jobs:  make(map[string]*job),
	}
}

// Arm cancels any live job for the schedule's guild and starts a fresh one
// from the given snapshot.
func (s *scheduler) Arm(schedule *entity.ScheduledPost) {
	j := &job{
		guildID:   schedule.GuildID,
		channelID: schedule.ChannelID,
		timing:    schedule.Timing,
		stopChan:  make(chan struct{}),
	}

	s.mu.Lock()
	if old, ok := s.jobs[j.guildID]; ok {
		close(old.stopChan)
	}
	s.jobs[j.guildID] = j
	s.mu.Unlock()

	go s.run(j)
}

// Cancel stops the guild's job. A sleeping job wakes immediately and exits
// without posting; a job mid-fire finishes its post but does not re-arm.
func (s *scheduler) Cancel(guildID string) {
	s.mu.Lock()
	if j, ok := s.jobs[guildID]; ok {
		close(j.stopChan)
		delete(s.jobs, guildID)
	}
	s.mu.Unlock()
}

func (s *scheduler) run(j *job) {
	for {
		wait := time.Duration(entity.SecondsUntilNext(j.timing, time.Now()) * float64(time.Second))
		log.Printf("Guild %s: next puzzle post in %s", j.guildID, wait.Round(time.Second))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			if !s.fire(j) {
				return
			}
		case <-j.stopChan:
			timer.Stop()
			return
		}

		// Cancel may have raced with the fire; the fire completed but the
		// job must not re-arm.
		select {
		case <-j.stopChan:
			return
		default:
		}
	}
}

// fire runs one scheduled post. Returns false when the job must terminate
// because its schedule was edited or removed while it slept.
func (s *scheduler) fire(j *job) bool {
	current, err := s.dm.Schedule().GetByGuildID(j.guildID)
	if err != nil {
		log.Printf("Guild %s: failed to re-read schedule, keeping job armed: %v", j.guildID, err)
		return true
	}

	if current == nil || current.Timing != j.timing || current.ChannelID != j.channelID {
		// The schedule changed while this job slept; the edit path already
		// armed a replacement, so this job just goes away.
		log.Printf("Guild %s: schedule changed while job was asleep, dropping stale job", j.guildID)
		s.forget(j)
		return false
	}

	if _, err := s.daily.EnsureToday(context.Background()); err != nil {
		log.Printf("Guild %s: no puzzle available for today's post: %v", j.guildID, err)
		return true
	}

	if err := s.post(context.Background(), current); err != nil {
		// A missed post is acceptable, a stuck scheduler is not. Re-arm for
		// tomorrow instead of retrying this occurrence.
		log.Printf("Guild %s: failed to post puzzle: %v", j.guildID, err)
	}

	return true
}

// forget removes j from the jobs map, but only if the map still points at j;
// a replacement armed meanwhile must stay.
func (s *scheduler) forget(j *job) {
	s.mu.Lock()
	if s.jobs[j.guildID] == j {
		delete(s.jobs, j.guildID)
	}
	s.mu.Unlock()
}
