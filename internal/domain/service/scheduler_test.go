package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hivebound/beebot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timingIn returns a decimal-hours timing that fires within about d from now.
// d must be at least a second because timings resolve to whole seconds.
func timingIn(d time.Duration) float64 {
	return entity.DecimalHours(time.Now().Add(d))
}

// countingPost returns a postFunc that counts invocations.
func countingPost(count *atomic.Int32) postFunc {
	return func(ctx context.Context, schedule *entity.ScheduledPost) error {
		count.Add(1)
		return nil
	}
}

func Test_scheduler_CancelBeforeFire(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	expectPuzzleReady(m, "bee-today", "content")

	var posts atomic.Int32
	s := newScheduler(m.mockDataManager, newDailyPuzzle(m.mockSource, 10*time.Millisecond), countingPost(&posts))

	schedule := &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: timingIn(2 * time.Second)}
	s.Arm(schedule)

	time.Sleep(100 * time.Millisecond)
	s.Cancel("g1")

	time.Sleep(3 * time.Second)
	assert.Zero(t, posts.Load(), "cancelled job must never post")

	s.mu.Lock()
	assert.Empty(t, s.jobs)
	s.mu.Unlock()
}

func Test_scheduler_EditRace(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	expectPuzzleReady(m, "bee-today", "content")

	oldTiming := timingIn(1 * time.Second)
	newTiming := timingIn(3 * time.Second)
	edited := &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: newTiming}

	// The store already holds the edited schedule by the time either job
	// fires.
	m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(edited, nil).AnyTimes()

	var posts atomic.Int32
	var postedTiming atomic.Value
	post := func(ctx context.Context, schedule *entity.ScheduledPost) error {
		posts.Add(1)
		postedTiming.Store(schedule.Timing)
		return nil
	}

	s := newScheduler(m.mockDataManager, newDailyPuzzle(m.mockSource, 10*time.Millisecond), post)

	// Job armed with the old snapshot, then replaced the way the edit path
	// does it.
	s.Arm(&entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: oldTiming})
	s.Arm(edited)

	time.Sleep(4 * time.Second)

	assert.Equal(t, int32(1), posts.Load(), "only the fresh job may post")
	assert.Equal(t, newTiming, postedTiming.Load())

	s.Cancel("g1")
}

func Test_scheduler_FireAndRearm(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	expectPuzzleReady(m, "bee-today", "content")

	schedule := &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: timingIn(1 * time.Second)}
	m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(schedule, nil).AnyTimes()

	var posts atomic.Int32
	s := newScheduler(m.mockDataManager, newDailyPuzzle(m.mockSource, 10*time.Millisecond), countingPost(&posts))

	s.Arm(schedule)

	time.Sleep(2 * time.Second)
	assert.Equal(t, int32(1), posts.Load())

	// The job re-armed itself for tomorrow.
	s.mu.Lock()
	_, alive := s.jobs["g1"]
	s.mu.Unlock()
	assert.True(t, alive, "job must stay armed after a successful fire")

	s.Cancel("g1")
}

func Test_scheduler_fire(t *testing.T) {
	type fireCase struct {
		name       string
		stored     *entity.ScheduledPost
		storedErr  error
		postErr    error
		wantRearm  bool
		wantPosted bool
	}

	armed := &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 7}

	tests := []fireCase{
		{
			name:       "Should post and re-arm when the schedule is unchanged",
			stored:     &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 7},
			wantRearm:  true,
			wantPosted: true,
		},
		{
			name:      "Should drop the job when the timing was edited",
			stored:    &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 12},
			wantRearm: false,
		},
		{
			name:      "Should drop the job when the channel was moved",
			stored:    &entity.ScheduledPost{GuildID: "g1", ChannelID: "c2", Timing: 7},
			wantRearm: false,
		},
		{
			name:      "Should drop the job when the schedule is gone",
			stored:    nil,
			wantRearm: false,
		},
		{
			name:      "Should keep the job armed when the store read fails",
			storedErr: fmt.Errorf("db locked"),
			wantRearm: true,
		},
		{
			name:       "Should re-arm even when the post fails",
			stored:     &entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 7},
			postErr:    fmt.Errorf("send failed"),
			wantRearm:  true,
			wantPosted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			expectPuzzleReady(m, "bee-today", "content")
			m.mockScheduleRepo.EXPECT().GetByGuildID("g1").Return(tt.stored, tt.storedErr)

			var posts atomic.Int32
			post := func(ctx context.Context, schedule *entity.ScheduledPost) error {
				posts.Add(1)
				return tt.postErr
			}

			s := newScheduler(m.mockDataManager, newDailyPuzzle(m.mockSource, 10*time.Millisecond), post)
			j := &job{guildID: armed.GuildID, channelID: armed.ChannelID, timing: armed.Timing, stopChan: make(chan struct{})}
			s.jobs["g1"] = j

			got := s.fire(j)
			assert.Equal(t, tt.wantRearm, got)

			if tt.wantPosted {
				assert.Equal(t, int32(1), posts.Load())
			} else {
				assert.Zero(t, posts.Load())
			}
		})
	}
}

func Test_scheduler_ArmReplacesExistingJob(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	var posts atomic.Int32
	s := newScheduler(m.mockDataManager, newDailyPuzzle(m.mockSource, 10*time.Millisecond), countingPost(&posts))

	s.Arm(&entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 23.0})
	s.mu.Lock()
	first := s.jobs["g1"]
	s.mu.Unlock()

	s.Arm(&entity.ScheduledPost{GuildID: "g1", ChannelID: "c1", Timing: 23.5})
	s.mu.Lock()
	second := s.jobs["g1"]
	require.Len(t, s.jobs, 1, "a guild can only ever have one live job")
	s.mu.Unlock()

	assert.NotSame(t, first, second)

	select {
	case <-first.stopChan:
	default:
		t.Fatal("replaced job was not cancelled")
	}

	s.Cancel("g1")
}
