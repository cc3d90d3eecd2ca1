// Package platform bridges the library to its host: scheduling
// callbacks onto the host's main (UI) context.
package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks
// on the main context. This should be called once by the host during
// initialization. Returns the previously registered function so tests
// can restore it.
func RegisterDispatch(fn func(callback func())) func(callback func()) {
	dispatchMu.Lock()
	prev := dispatchFunc
	dispatchFunc = fn
	dispatchMu.Unlock()
	return prev
}

// Dispatch schedules a callback to run on the main context.
// Returns true if the callback was successfully scheduled, false if no
// dispatch function is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// DispatchOrRun schedules the callback on the main context, or runs it
// inline when no dispatch function is registered. Hosts without a
// separate animation goroutine need no registration at all.
func DispatchOrRun(callback func()) {
	if callback == nil {
		return
	}
	if !Dispatch(callback) {
		callback()
	}
}
