package animation

import (
	"sync"
	"time"
)

// maxFrameDelta caps the time step fed to spring physics so a stalled
// frame loop cannot make the simulation catch up all at once.
const maxFrameDelta = 0.032

// Value is a live animated scalar.
//
// A Value has exactly one writer of intent (the main context issues
// AnimateTo and Set) while advancement happens on the frame pump via
// [StepTickers], possibly on another goroutine; internal state is
// guarded accordingly.
//
// Exactly one animation drives a Value at a time. Starting a new run,
// or assigning directly with Set, supersedes the in-flight run: its
// settle callback fires with finished=false before the new state takes
// effect. There is no separate cancel operation.
type Value struct {
	mu    sync.Mutex
	value float64

	ticker *Ticker
	run    *valueRun

	listeners map[int]func()
	nextID    int
	disposed  bool
}

// valueRun holds the driver state of one animation run.
type valueRun struct {
	target   float64
	onSettle func(finished bool)

	// duration driver
	from     float64
	duration time.Duration
	curve    func(float64) float64

	// spring driver
	spring      *SpringSimulation
	prevElapsed time.Duration
}

// NewValue creates a Value holding initial.
func NewValue(initial float64) *Value {
	return &Value{
		value:     initial,
		listeners: make(map[int]func()),
	}
}

// Value returns the current value.
func (v *Value) Value() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// IsAnimating returns true while an animation run is in flight.
func (v *Value) IsAnimating() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.run != nil
}

// Set assigns the value directly, superseding any in-flight run.
// The superseded run's settle callback fires with finished=false.
func (v *Value) Set(x float64) {
	v.mu.Lock()
	interrupted := v.stopLocked()
	v.value = x
	listeners := v.snapshotListenersLocked()
	v.mu.Unlock()

	if interrupted != nil {
		interrupted(false)
	}
	for _, fn := range listeners {
		fn()
	}
}

// AnimateTo starts an animation run toward target. The driver is chosen
// by the shape of cfg: spring-shaped configs run the spring driver,
// everything else the duration driver.
//
// onSettle, if non-nil, is invoked exactly once for this run: with true
// when the value reaches target, with false when the run is superseded
// first. It fires on the goroutine that advances the animation; marshal
// main-context side effects explicitly.
func (v *Value) AnimateTo(target float64, cfg Config, onSettle func(finished bool)) {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return
	}
	interrupted := v.stopLocked()

	run := &valueRun{target: target, onSettle: onSettle}
	if cfg.IsSpring() {
		run.spring = NewSpringSimulation(cfg.spring(), v.value, 0, target)
	} else {
		run.from = v.value
		run.duration = cfg.duration()
		run.curve = cfg.curve()
	}
	v.run = run
	v.ticker = NewTicker(v.tick)
	ticker := v.ticker
	v.mu.Unlock()

	if interrupted != nil {
		interrupted(false)
	}
	ticker.Start()
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (v *Value) AddListener(fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// Dispose stops any in-flight run (its settle callback fires with
// finished=false) and drops all listeners.
func (v *Value) Dispose() {
	v.mu.Lock()
	interrupted := v.stopLocked()
	v.listeners = map[int]func(){}
	v.disposed = true
	v.mu.Unlock()

	if interrupted != nil {
		interrupted(false)
	}
}

// stopLocked halts the current run and returns its settle callback, or
// nil if nothing was in flight. Callers invoke the callback after
// releasing the lock.
func (v *Value) stopLocked() func(finished bool) {
	if v.ticker != nil {
		v.ticker.Stop()
		v.ticker = nil
	}
	run := v.run
	v.run = nil
	if run == nil {
		return nil
	}
	return run.onSettle
}

func (v *Value) snapshotListenersLocked() []func() {
	if len(v.listeners) == 0 {
		return nil
	}
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	return fns
}

// tick advances the in-flight run. Called from StepTickers with the
// elapsed time since the run's ticker started.
func (v *Value) tick(elapsed time.Duration) {
	v.mu.Lock()
	run := v.run
	if run == nil {
		v.mu.Unlock()
		return
	}

	done := false
	if run.spring != nil {
		dt := (elapsed - run.prevElapsed).Seconds()
		run.prevElapsed = elapsed
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
		if dt > 0 {
			done = run.spring.Step(dt)
		}
		v.value = run.spring.Position()
	} else {
		if run.duration <= 0 {
			v.value = run.target
			done = true
		} else {
			progress := float64(elapsed) / float64(run.duration)
			if progress >= 1 {
				progress = 1
				done = true
			}
			v.value = run.from + (run.target-run.from)*run.curve(progress)
		}
	}

	var settle func(finished bool)
	if done {
		v.value = run.target
		if v.ticker != nil {
			v.ticker.Stop()
			v.ticker = nil
		}
		v.run = nil
		settle = run.onSettle
	}
	listeners := v.snapshotListenersLocked()
	v.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	if settle != nil {
		settle(true)
	}
}
