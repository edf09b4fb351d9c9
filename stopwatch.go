// Package stopwatch measures wall-clock elapsed time between a start
// and an optional stop event and renders the interval in several
// human-readable string forms.
package stopwatch

import (
	"fmt"
	"log/slog"

	"github.com/jmhodges/clock"
)

// Timer records a start timestamp and, once stopped, a stop timestamp,
// and computes the elapsed interval between them. While running, the
// interval is measured against the current clock reading instead.
//
// A Timer assumes a single owner; callers sharing one across
// goroutines must synchronize externally.
type Timer struct {
	hires     bool
	startedAt timestamp
	stoppedAt timestamp
	hmsFormat string
	display   Format
	clk       clock.Clock
}

// Options configures a Timer. The zero value of each field selects the
// documented default.
type Options struct {
	// Start begins the measurement immediately on construction.
	Start bool

	// Hires selects sub-second timestamps. nil means use the detected
	// host capability; an explicit true still degrades to coarse when
	// the host clock has no sub-second resolution; an explicit false
	// always yields whole-second timestamps.
	Hires *bool

	// HMS is the 3-slot fmt.Sprintf template (hours, minutes, seconds)
	// used for hours:minutes:seconds rendering. Empty means
	// DefaultFormatSpec for the chosen resolution.
	HMS string

	// Display is the default format used by Display and String. The
	// zero value is FormatShort.
	Display Format

	// Format is an older name for HMS, kept so existing callers keep
	// working. Setting it logs a migration warning.
	//
	// Deprecated: use HMS.
	Format string

	// Clock overrides the time source. nil means the system clock.
	Clock clock.Clock
}

// DefaultOptions returns the construction defaults: auto-start on,
// resolution auto-detected, short display format.
func DefaultOptions() Options {
	return Options{Start: true}
}

// NewTimer creates a started Timer with default options.
func NewTimer() *Timer {
	return New(DefaultOptions())
}

// New creates a Timer from opts.
func New(opts Options) *Timer {
	hires := HiresAvailable()
	if opts.Hires != nil {
		hires = *opts.Hires && HiresAvailable()
	}

	hmsFormat := opts.HMS
	if hmsFormat == "" && opts.Format != "" {
		slog.Warn("stopwatch: the Format option is deprecated, use HMS instead", "format", opts.Format)
		hmsFormat = opts.Format
	}
	if hmsFormat == "" {
		hmsFormat = DefaultFormatSpec(hires)
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	t := &Timer{
		hires:     hires,
		hmsFormat: hmsFormat,
		display:   opts.Display,
		clk:       clk,
	}
	if opts.Start {
		t.Start()
	}
	return t
}

// Start begins a new measurement. Calling Start on a running or
// stopped timer restarts it and clears any recorded stop time.
func (t *Timer) Start() {
	t.stoppedAt = timestamp{}
	t.startedAt = capture(t.clk, t.hires)
}

// Stop records the stop time and returns the elapsed seconds at the
// moment of the call. A second Stop does not move the recorded stop
// time. Stopping a timer that was never started still records the
// stop time but returns ErrNotStarted.
func (t *Timer) Stop() (float64, error) {
	if !t.stoppedAt.valid {
		t.stoppedAt = capture(t.clk, t.hires)
	}
	return t.Elapsed()
}

// Running reports whether the timer has been started and not yet
// stopped.
func (t *Timer) Running() bool {
	return t.startedAt.valid && !t.stoppedAt.valid
}

// Elapsed returns the measured interval in fractional seconds: stop
// minus start once stopped, now minus start while running. It returns
// ErrNotStarted before the first Start.
//
// Elapsed is the numeric counterpart of String; intervals from
// several timers can be summed directly.
func (t *Timer) Elapsed() (float64, error) {
	if !t.startedAt.valid {
		return 0, ErrNotStarted
	}
	end := t.stoppedAt
	if !end.valid {
		end = capture(t.clk, t.hires)
	}
	return end.sub(t.startedAt), nil
}

// HMS returns the elapsed interval decomposed into whole hours, whole
// minutes and the remaining (possibly fractional) seconds.
func (t *Timer) HMS() (hours, minutes int64, secs float64, err error) {
	total, err := t.Elapsed()
	if err != nil {
		return 0, 0, 0, err
	}
	hours, minutes, secs = SplitHMS(total)
	return hours, minutes, secs, nil
}

// HMSString renders the elapsed interval through a 3-slot Sprintf
// template. An empty format uses the template the Timer was
// constructed with.
func (t *Timer) HMSString(format string) (string, error) {
	secs, err := t.Elapsed()
	if err != nil {
		return "", err
	}
	if format == "" {
		format = t.hmsFormat
	}
	return t.formatHMS(format, secs), nil
}

// formatHMS applies a template to an elapsed-seconds snapshot. Coarse
// timers carry whole-second readings, so their seconds slot is passed
// as an integer to satisfy integer verbs like %02d.
func (t *Timer) formatHMS(format string, secs float64) string {
	h, m, s := SplitHMS(secs)
	if t.hires {
		return fmt.Sprintf(format, h, m, s)
	}
	return fmt.Sprintf(format, h, m, int64(s))
}
