package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTime(t *testing.T) {
	loc := Location()

	tests := []struct {
		name   string
		timing float64
		from   time.Time
		want   time.Time
	}{
		{
			name:   "Should return today if time hasn't passed",
			timing: 15,
			from:   time.Date(2024, 1, 1, 10, 0, 0, 0, loc),
			want:   time.Date(2024, 1, 1, 15, 0, 0, 0, loc),
		},
		{
			name:   "Should return tomorrow if time has passed",
			timing: 9,
			from:   time.Date(2024, 1, 1, 10, 0, 0, 0, loc),
			want:   time.Date(2024, 1, 2, 9, 0, 0, 0, loc),
		},
		{
			name:   "Should return tomorrow when from is exactly the target",
			timing: 7,
			from:   time.Date(2024, 1, 1, 7, 0, 0, 0, loc),
			want:   time.Date(2024, 1, 2, 7, 0, 0, 0, loc),
		},
		{
			name:   "Should encode fractional hours down to seconds",
			timing: 3.5,
			from:   time.Date(2024, 1, 1, 1, 0, 0, 0, loc),
			want:   time.Date(2024, 1, 1, 3, 30, 0, 0, loc),
		},
		{
			name:   "Should roll over the year",
			timing: 7,
			from:   time.Date(2023, 12, 31, 20, 0, 0, 0, loc),
			want:   time.Date(2024, 1, 1, 7, 0, 0, 0, loc),
		},
		{
			name:   "Should land on Feb 29 in a leap year",
			timing: 10,
			from:   time.Date(2024, 2, 28, 10, 0, 0, 0, loc),
			want:   time.Date(2024, 2, 29, 10, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextTime(tt.timing, tt.from)
			assert.True(t, got.Equal(tt.want), "NextTime() = %v, want %v", got, tt.want)
			assert.True(t, got.After(tt.from), "result must be strictly after the reference")
		})
	}
}

func TestSecondsUntilNext_DST(t *testing.T) {
	loc := Location()

	t.Run("spring forward shortens the gap", func(t *testing.T) {
		// March 13th 2022 skips 02:00-03:00 local.
		from := time.Date(2022, 3, 12, 7, 0, 0, 0, loc)
		assert.Equal(t, (23 * time.Hour).Seconds(), SecondsUntilNext(7, from))
		assert.Equal(t, (19*time.Hour + 30*time.Minute).Seconds(), SecondsUntilNext(3.5, from))
	})

	t.Run("fall back stretches the gap", func(t *testing.T) {
		// November 6th 2022 repeats 01:00-02:00 local.
		from := time.Date(2022, 11, 5, 7, 0, 0, 0, loc)
		assert.Equal(t, (25 * time.Hour).Seconds(), SecondsUntilNext(7, from))
		assert.Equal(t, (21*time.Hour + 30*time.Minute).Seconds(), SecondsUntilNext(3.5, from))
	})

	t.Run("timing inside the skipped hour", func(t *testing.T) {
		// 02:30 does not exist on 2022-03-13; the occurrence must still land
		// on that date, after the reference.
		from := time.Date(2022, 3, 13, 1, 45, 0, 0, loc)
		got := NextTime(2.5, from)

		require.True(t, got.After(from), "NextTime() = %v, not after %v", got, from)
		assert.Equal(t, "2022-03-13", DateStamp(got))
		assert.Greater(t, SecondsUntilNext(2.5, from), 0.0)
	})

	t.Run("skipped timing advances one date per step", func(t *testing.T) {
		prev := time.Date(2022, 3, 11, 12, 0, 0, 0, loc)
		for i := 0; i < 4; i++ {
			next := NextTime(2.5, prev)

			require.True(t, next.After(prev), "step %d: %v not after %v", i, next, prev)
			assert.Equal(t, DateStamp(prev.AddDate(0, 0, 1)), DateStamp(next), "step %d: skipped or repeated a day", i)

			prev = next
		}
	})

	t.Run("always positive and at most a DST day", func(t *testing.T) {
		from := time.Date(2022, 6, 1, 12, 0, 0, 0, loc)
		for hours := 0.0; hours < 24; hours += 1.25 {
			got := SecondsUntilNext(hours, from)
			assert.Greater(t, got, 0.0)
			assert.LessOrEqual(t, got, (25 * time.Hour).Seconds())
		}
	})
}

func TestNextTime_IteratedDailyAdvance(t *testing.T) {
	// Feeding each result back in must advance the calendar date by exactly
	// one per step for over a year, across both 2022 DST transitions.
	ref := time.Date(2022, 1, 1, 3, 0, 0, 0, Location())

	prev := ref
	for i := 0; i < 400; i++ {
		next := NextTime(1.0, prev)

		require.True(t, next.After(prev), "step %d: %v not after %v", i, next, prev)
		assert.Equal(t, 1.0, DecimalHours(next), "step %d: wall clock drifted", i)

		wantDate := prev.In(Location()).AddDate(0, 0, 1)
		assert.Equal(t, DateStamp(wantDate), DateStamp(next), "step %d: skipped or repeated a day", i)

		prev = next
	}
}

func TestDecimalHours(t *testing.T) {
	loc := Location()

	assert.Equal(t, 0.0, DecimalHours(time.Date(2024, 1, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, 3.5, DecimalHours(time.Date(2024, 1, 1, 3, 30, 0, 0, loc)))
	assert.InDelta(t, 23.999, DecimalHours(time.Date(2024, 1, 1, 23, 59, 59, 0, loc)), 0.001)

	// Sub-second precision is dropped.
	assert.Equal(t, 3.5, DecimalHours(time.Date(2024, 1, 1, 3, 30, 0, 999_000_000, loc)))

	// UTC instants are read in the scheduling timezone.
	utc := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) // 07:00 in New York
	assert.Equal(t, 7.0, DecimalHours(utc))
}

func TestScheduledPost_SecondsUntilNext(t *testing.T) {
	schedule := &ScheduledPost{GuildID: "g", ChannelID: "c", Timing: 7}

	from := time.Date(2024, 1, 1, 6, 0, 0, 0, Location())
	assert.Equal(t, (1 * time.Hour).Seconds(), schedule.SecondsUntilNext(from))
	assert.True(t, schedule.NextTime(from).Equal(time.Date(2024, 1, 1, 7, 0, 0, 0, Location())))
}
