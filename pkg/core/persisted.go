package core

// PersistedCell retains the most recently seen present value so a
// consumer can keep rendering content that has logically gone away,
// typically while an exit animation plays out.
//
// Presence is defined by the caller's predicate. Reset clears the cell
// and notifies listeners, but only when something was actually stored;
// resetting an empty cell is a no-op and triggers no notification.
type PersistedCell[T any] struct {
	ChangeNotifier

	present func(T) bool
	stored  T
	has     bool
}

// NewPersistedCell creates an empty cell. present decides whether a
// value counts as present; a nil predicate treats every value as present.
func NewPersistedCell[T any](present func(T) bool) *PersistedCell[T] {
	if present == nil {
		present = func(T) bool { return true }
	}
	return &PersistedCell[T]{present: present}
}

// Current feeds the latest externally-provided value into the cell.
// Present values are stored; absent values leave the previous stored
// value retrievable.
func (c *PersistedCell[T]) Current(v T) {
	if !c.present(v) {
		return
	}
	c.stored = v
	c.has = true
}

// Read returns live if it is present, otherwise the stored value.
// If nothing has ever been stored, the zero value is returned.
func (c *PersistedCell[T]) Read(live T) T {
	if c.present(live) {
		return live
	}
	return c.stored
}

// Has reports whether a value is currently stored.
func (c *PersistedCell[T]) Has() bool {
	return c.has
}

// Reset clears the stored value. When a value was actually stored,
// listeners are notified because Read's result changes; otherwise
// Reset is a no-op.
func (c *PersistedCell[T]) Reset() {
	if !c.has {
		return
	}
	var zero T
	c.stored = zero
	c.has = false
	c.NotifyListeners()
}
