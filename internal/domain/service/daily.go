package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/hivebound/beebot/internal/domain"
	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/internal/domain/entity"
	"golang.org/x/sync/singleflight"
)

// ErrStopped is returned to waiters when the coordinator shuts down before
// today's puzzle could be fetched.
var ErrStopped = errors.New("daily puzzle coordinator stopped")

// dailyPuzzle makes sure the shared puzzle of the day is fetched at most once
// per calendar date no matter how many guild jobs fire. The first waiter for
// a new date owns a retry loop that runs until the fetch succeeds; every
// concurrent waiter shares that one attempt through the singleflight group.
type dailyPuzzle struct {
	source       contract.PuzzleSource
	retryBackoff time.Duration

	group    singleflight.Group
	stopChan chan struct{}

	mu        sync.Mutex
	readyDate string
	puzzleID  string
	running   bool
}

func newDailyPuzzle(source contract.PuzzleSource, retryBackoff time.Duration) *dailyPuzzle {
	return &dailyPuzzle{
		source:       source,
		retryBackoff: retryBackoff,
		stopChan:     make(chan struct{}),
	}
}

// EnsureToday blocks until today's puzzle has been fetched and rendered,
// returning its id. Waiters during the same date share one in-flight fetch.
// Cancelling ctx releases the caller, not the fetch itself.
func (d *dailyPuzzle) EnsureToday(ctx context.Context) (string, error) {
	stamp := entity.DateStamp(time.Now())

	d.mu.Lock()
	if d.readyDate == stamp {
		id := d.puzzleID
		d.mu.Unlock()
		return id, nil
	}
	d.mu.Unlock()

	ch := d.group.DoChan(stamp, func() (interface{}, error) {
		// The flight may start after a previous one for the same date already
		// finished; never fetch a date twice.
		d.mu.Lock()
		if d.readyDate == stamp {
			id := d.puzzleID
			d.mu.Unlock()
			return id, nil
		}
		d.mu.Unlock()
		return d.fetchUntilReady(stamp)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ReadyNow reports whether today's puzzle is already fetched. Diagnostics
// only; the authoritative path is EnsureToday.
func (d *dailyPuzzle) ReadyNow() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readyDate == entity.DateStamp(time.Now())
}

// fetchUntilReady retries the fetch with a fixed backoff until it succeeds.
// A missing puzzle has no substitute, so waiters stay blocked rather than
// being handed an error they cannot act on.
func (d *dailyPuzzle) fetchUntilReady(stamp string) (string, error) {
	d.mu.Lock()
	stop := d.stopChan
	d.mu.Unlock()

	for {
		if d.source.ExistsForToday() {
			id, err := d.source.FetchAndRenderToday(context.Background())
			if err == nil {
				d.mu.Lock()
				d.readyDate = stamp
				d.puzzleID = id
				d.mu.Unlock()
				log.Printf("Puzzle for %s is ready (%s)", stamp, id)
				return id, nil
			}
			log.Printf("Failed to fetch puzzle for %s, retrying in %s: %v", stamp, d.retryBackoff, err)
		} else {
			log.Printf("Puzzle for %s not published yet, retrying in %s", stamp, d.retryBackoff)
		}

		timer := time.NewTimer(d.retryBackoff)
		select {
		case <-timer.C:
		case <-stop:
			timer.Stop()
			return "", ErrStopped
		}
	}
}

// Start launches the daily pre-fetch trigger: an immediate warm-up plus one
// wake-up per calendar day at the pre-fetch hour, so scheduled posts rarely
// have to wait on the fetch.
func (d *dailyPuzzle) Start() {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	stop := d.stopChan
	d.mu.Unlock()

	log.Println("Daily puzzle pre-fetch starting...")
	go d.prefetchLoop(stop)
}

// Stop halts the pre-fetch trigger and releases any waiting retry loops.
// Start may be called again afterward.
func (d *dailyPuzzle) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	log.Println("Daily puzzle pre-fetch stopping...")
	close(d.stopChan)
	d.stopChan = make(chan struct{})
	d.running = false
}

func (d *dailyPuzzle) prefetchLoop(stop chan struct{}) {
	d.warmUp()

	for {
		wait := time.Duration(entity.SecondsUntilNext(domain.PrefetchTiming, time.Now()) * float64(time.Second))
		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
			d.warmUp()
		case <-stop:
			timer.Stop()
			return
		}
	}
}

func (d *dailyPuzzle) warmUp() {
	if _, err := d.EnsureToday(context.Background()); err != nil {
		log.Printf("Puzzle pre-fetch aborted: %v", err)
	}
}
