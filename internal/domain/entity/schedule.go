package entity

import (
	"fmt"
	"time"
)

// loc is the zone every stored timing is interpreted in. The puzzle publisher
// operates on New York time, so schedules do too.
var loc = mustLoadLocation()

func mustLoadLocation() *time.Location {
	l, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(fmt.Sprintf("failed to load America/New_York: %v", err))
	}
	return l
}

// Location returns the fixed scheduling timezone.
func Location() *time.Location {
	return loc
}

// ScheduledPost is one guild's puzzle subscription. Timing is a wall-clock
// time of day in decimal hours within [0, 24); the encoding resolves down to
// whole seconds. CurrentSession is empty until the first post goes out and is
// only ever overwritten by the next post.
type ScheduledPost struct {
	ID             int64
	GuildID        string
	ChannelID      string
	Timing         float64
	CurrentSession string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DecimalHours returns t's wall-clock time of day in the scheduling timezone
// as decimal hours, truncated to whole seconds.
func DecimalHours(t time.Time) float64 {
	t = t.In(loc)
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

// NextTime returns the next instant whose wall-clock time of day equals
// timing. If from is strictly before timing on its own calendar date the
// result is that date, otherwise the following one. Building the result with
// time.Date keeps the wall-clock reading stable across DST transitions: the
// gap from from shrinks to 23h on spring-forward days and stretches to 25h on
// fall-back days. A timing inside the skipped hour of a spring-forward day
// shifts past the gap, so there is still exactly one occurrence on that date
// and the result stays after from.
func NextTime(timing float64, from time.Time) time.Time {
	base := from.In(loc)
	if DecimalHours(base) >= timing {
		base = base.AddDate(0, 0, 1)
	}
	secs := int(timing*3600 + 0.5)
	t := time.Date(base.Year(), base.Month(), base.Day(), secs/3600, (secs/60)%60, secs%60, 0, loc)
	if w := t.Hour()*3600 + t.Minute()*60 + t.Second(); w < secs {
		// The wall-clock reading does not exist on this date and time.Date
		// normalized it backward across the gap. Shift forward by the skipped
		// span; w > secs means it already normalized past the gap.
		t = t.Add(time.Duration(secs-w) * time.Second)
	}
	return t
}

// SecondsUntilNext returns how many seconds separate from from the next
// occurrence of timing. Always positive; within (0, 24h] absent DST shifts.
func SecondsUntilNext(timing float64, from time.Time) float64 {
	return NextTime(timing, from).Sub(from).Seconds()
}

// NextTime returns the schedule's next posting instant after from.
func (s *ScheduledPost) NextTime(from time.Time) time.Time {
	return NextTime(s.Timing, from)
}

// SecondsUntilNext returns the seconds until the schedule's next posting
// instant after from.
func (s *ScheduledPost) SecondsUntilNext(from time.Time) float64 {
	return SecondsUntilNext(s.Timing, from)
}

// DateStamp formats t's calendar date in the scheduling timezone. Used as the
// key for everything that is "per day": puzzle cache entries, session dates.
func DateStamp(t time.Time) string {
	return t.In(loc).Format("2006-01-02")
}
