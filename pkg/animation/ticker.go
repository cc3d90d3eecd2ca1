// Package animation provides the animated-value machinery behind the
// size transition container: live scalar values, spring and duration
// drivers, easing curves, and piecewise-linear interpolation.
//
// # Core Components
//
//   - [Value]: a live animated scalar. Exactly one animation drives a
//     Value at a time; starting a new one supersedes the previous run
//     and reports the interruption through its settle callback.
//
//   - [Config]: describes either a spring (Mass, Stiffness, Damping or
//     DampingRatio) or a timed curve (Duration, Curve). The shape of the
//     config selects the driver when [Value.AnimateTo] starts a run.
//
//   - [SpringSimulation]: physics-based spring stepping, shared by the
//     spring driver and available directly for gesture-driven motion.
//
//   - [Interpolate]: maps a scalar through parallel input/output
//     breakpoint sequences, clamped or extrapolated at the edges.
//
// # Scheduling
//
// Values advance on the host's frame loop: the host calls [StepTickers]
// once per frame, possibly from a goroutine other than the one that
// issues [Value.AnimateTo]. Settle callbacks fire on the StepTickers
// goroutine; side effects that must run on the main context should be
// marshaled through the platform dispatch.
//
// # Basic Usage
//
//	visibility := animation.NewValue(0)
//	visibility.AnimateTo(1, animation.Config{Duration: 300 * time.Millisecond}, nil)
//
//	// each frame
//	animation.StepTickers()
//	opacity := visibility.Value()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [Value].
// Most code should use Value directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers
// are driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host's frame loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
// Hosts can use this to skip redraws while everything is settled.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
