package stopwatch

import (
	"sync"
	"time"

	"github.com/jmhodges/clock"
)

// timestamp is a captured clock reading split into whole seconds since
// the Unix epoch and a sub-second microsecond component. Coarse timers
// truncate the microsecond component to zero at capture time.
type timestamp struct {
	sec    int64
	micros int64
	valid  bool
}

// capture reads the clock at the given resolution.
func capture(clk clock.Clock, hires bool) timestamp {
	now := clk.Now()
	ts := timestamp{sec: now.Unix(), valid: true}
	if hires {
		ts.micros = int64(now.Nanosecond()) / 1e3
	}
	return ts
}

// sub returns t minus u in fractional seconds. The subtraction is done
// in whole microseconds so the sub-second component borrows correctly
// across the second boundary.
func (t timestamp) sub(u timestamp) float64 {
	micros := (t.sec-u.sec)*1e6 + (t.micros - u.micros)
	return float64(micros) / 1e6
}

var (
	hiresOnce  sync.Once
	hiresFound bool
)

// HiresAvailable reports whether the host clock provides sub-second
// resolution. The check runs at most once per process and the result
// is cached for its lifetime.
func HiresAvailable() bool {
	hiresOnce.Do(func() {
		// A clock stuck on whole seconds would report a zero
		// nanosecond component on every read.
		for i := 0; i < 4; i++ {
			if time.Now().Nanosecond() != 0 {
				hiresFound = true
				return
			}
			time.Sleep(time.Microsecond)
		}
	})
	return hiresFound
}
