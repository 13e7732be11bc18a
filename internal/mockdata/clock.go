package mockdata

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is the time source used to date generated records. Tests freeze it
// with SetClock so relative dates ("3 days ago") are deterministic.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time from the package clock
func Now() time.Time {
	return clock.Now()
}
