package domain

// Timing choices offered by /start_puzzling, as decimal hours from the start
// of the day in America/New_York.
var TimingChoices = map[string]float64{
	"Morning":   7,
	"Noon":      12,
	"Afternoon": 16,
	"Evening":   20,
	"ASAP":      3,
}

// TimingOrder fixes the display order of the choices.
var TimingOrder = []string{"Morning", "Noon", "Afternoon", "Evening", "ASAP"}

// DefaultTiming is the choice applied when a subscriber picks no time.
const DefaultTiming = "Morning"

// PrefetchTiming is the decimal hour at which the daily pre-fetch trigger
// runs. It matches the earliest posting slot (ASAP) so the puzzle is usually
// ready before any guild's post fires.
const PrefetchTiming = 3.0
