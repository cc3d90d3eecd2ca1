// Package core provides change notification primitives and the
// persisted value cell used by the transition state.
package core

import "sync"

// Listenable is anything that can notify listeners of changes.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(fn func()) func()
}

// Disposable is anything that must be released when its owner goes away.
type Disposable interface {
	Dispose()
}

// ChangeNotifier is a reusable Listenable implementation. Embed it or
// hold it by value; the zero value is ready to use.
type ChangeNotifier struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

// AddListener adds a callback that fires on NotifyListeners.
// Returns an unsubscribe function.
func (n *ChangeNotifier) AddListener(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// NotifyListeners invokes all registered callbacks. Callbacks run
// outside the internal lock, so they may add or remove listeners.
func (n *ChangeNotifier) NotifyListeners() {
	n.mu.Lock()
	if len(n.listeners) == 0 {
		n.mu.Unlock()
		return
	}
	fns := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
