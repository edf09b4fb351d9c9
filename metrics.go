package stopwatch

import "github.com/prometheus/client_golang/prometheus"

// ObservedTimer couples a Timer with a prometheus Observer. The Stop
// that freezes the measurement also records the elapsed seconds into
// the observer, so a histogram or summary tracks the same intervals
// the timer reports.
type ObservedTimer struct {
	*Timer
	obs prometheus.Observer
}

// NewObserved creates a Timer whose Stop also records into obs.
func NewObserved(obs prometheus.Observer, opts Options) *ObservedTimer {
	return &ObservedTimer{Timer: New(opts), obs: obs}
}

// Stop stops the underlying timer. Only the call that actually records
// the stop timestamp observes the measurement; repeated Stops and
// Stops on an unstarted timer record nothing.
func (o *ObservedTimer) Stop() (float64, error) {
	first := !o.stoppedAt.valid
	secs, err := o.Timer.Stop()
	if err != nil || !first {
		return secs, err
	}
	o.obs.Observe(secs)
	return secs, nil
}
