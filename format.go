package stopwatch

import (
	"fmt"
	"math"
	"strconv"
)

// A Format selects how Display renders the elapsed interval: one of
// the built-in variants, or a caller-supplied function wrapped by
// CustomFormat.
type Format struct {
	kind formatKind
	fn   func(seconds float64) string
}

type formatKind int

const (
	formatShort formatKind = iota
	formatRPS
	formatHuman
	formatFull
	formatCustom
)

// Built-in display variants.
var (
	// FormatShort renders "<seconds>s (<hh:mm:ss>)".
	FormatShort = Format{kind: formatShort}
	// FormatRPS renders "<seconds>s (<rate>/s)" with the inverse rate
	// to three decimal places, or "??" for a zero interval.
	FormatRPS = Format{kind: formatRPS}
	// FormatHuman renders "<h> hours <m> minutes <s> seconds".
	FormatHuman = Format{kind: formatHuman}
	// FormatFull renders "<seconds> seconds (<human form>)".
	FormatFull = Format{kind: formatFull}
)

// CustomFormat wraps a caller-supplied rendering function. The
// function receives the elapsed-seconds snapshot taken for the call.
func CustomFormat(fn func(seconds float64) string) Format {
	return Format{kind: formatCustom, fn: fn}
}

// ParseFormat resolves a display format by name: "short", "rps",
// "human" or "full". Any other name yields an *UnknownFormatError.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "short":
		return FormatShort, nil
	case "rps":
		return FormatRPS, nil
	case "human":
		return FormatHuman, nil
	case "full":
		return FormatFull, nil
	default:
		return Format{}, &UnknownFormatError{Name: name}
	}
}

// Display renders the elapsed interval with the Timer's default
// format.
func (t *Timer) Display() (string, error) {
	return t.DisplayAs(t.display)
}

// DisplayAs renders the elapsed interval with an explicit format. The
// elapsed time is sampled once and reused across the whole rendering,
// so a running timer sees a single consistent snapshot per call.
func (t *Timer) DisplayAs(f Format) (string, error) {
	secs, err := t.Elapsed()
	if err != nil {
		return "", err
	}
	switch f.kind {
	case formatCustom:
		return f.fn(secs), nil
	case formatRPS:
		rate := "??"
		if secs != 0 {
			rate = strconv.FormatFloat(1/secs, 'f', 3, 64)
		}
		return fmt.Sprintf("%ss (%s/s)", formatSeconds(secs), rate), nil
	case formatHuman:
		return humanize(secs), nil
	case formatFull:
		return fmt.Sprintf("%s seconds (%s)", formatSeconds(secs), humanize(secs)), nil
	default:
		return fmt.Sprintf("%ss (%s)", formatSeconds(secs), t.formatHMS(t.hmsFormat, secs)), nil
	}
}

// String implements fmt.Stringer via Display. A timer that cannot be
// rendered yet (never started) surfaces the error text instead, so
// String stays total.
func (t *Timer) String() string {
	s, err := t.Display()
	if err != nil {
		return err.Error()
	}
	return s
}

// SplitHMS decomposes a duration in seconds into whole hours, whole
// minutes and the remaining seconds. The seconds component keeps any
// fractional part. Hours are not rolled over into days.
func SplitHMS(seconds float64) (hours, minutes int64, secs float64) {
	hours = int64(seconds / 3600)
	seconds -= float64(hours) * 3600
	minutes = int64(seconds / 60)
	secs = seconds - float64(minutes)*60
	return hours, minutes, secs
}

// DefaultFormatSpec returns the hours:minutes:seconds Sprintf template
// for the given resolution: microsecond-precision seconds when
// fractional, whole seconds otherwise.
func DefaultFormatSpec(fractional bool) string {
	if fractional {
		return "%02d:%02d:%09.6f"
	}
	return "%02d:%02d:%02d"
}

// FormatHMS renders already-decomposed components, choosing the
// fractional template when the seconds component is not a whole
// number.
func FormatHMS(hours, minutes int64, secs float64) string {
	if secs != math.Trunc(secs) {
		return fmt.Sprintf(DefaultFormatSpec(true), hours, minutes, secs)
	}
	return fmt.Sprintf(DefaultFormatSpec(false), hours, minutes, int64(secs))
}

// FormatHMSSeconds renders a total-seconds value, decomposing it
// first.
func FormatHMSSeconds(total float64) string {
	h, m, s := SplitHMS(total)
	return FormatHMS(h, m, s)
}

// humanize renders the "<h> hours <m> minutes <s> seconds" form.
func humanize(secs float64) string {
	h, m, s := SplitHMS(secs)
	return fmt.Sprintf("%d hours %d minutes %s seconds", h, m, formatSeconds(s))
}

// formatSeconds is the default numeric rendering: the shortest decimal
// form that round-trips, so whole values print without a fraction.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
