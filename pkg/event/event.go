// Package event provides small multicast listener lists for one-shot game signals
// such as a player reaching the win zone.
package event

// Event is a multicast event carrying a single argument.
// Listeners are invoked synchronously in registration order.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener registers a callback invoked on every Invoke. Nil callbacks are ignored.
func (e *Event[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// RemoveAllListeners clears all listeners
func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners with arg
func (e *Event[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

// ListenerCount returns the number of registered listeners
func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
