// Package notify provides the ordered, cancellable callback lists used for
// every change notification in go-floating.
package notify

import "sync"

// List is an ordered set of callbacks that can each be cancelled.
// The zero value is ready to use. Thread-safe.
type List[T any] struct {
	mu    sync.RWMutex
	items []item[T]
	next  int
}

type item[T any] struct {
	id int
	fn func(T)
}

// Add registers fn and returns a cancel func. Cancel is idempotent.
func (l *List[T]) Add(fn func(T)) (cancel func()) {
	l.mu.Lock()
	id := l.next
	l.next++
	l.items = append(l.items, item[T]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *List[T]) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if it.id == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Emit calls every callback with v, in registration order. Callbacks added or
// removed during Emit take effect on the next call.
func (l *List[T]) Emit(v T) {
	l.mu.RLock()
	snapshot := make([]func(T), len(l.items))
	for i, it := range l.items {
		snapshot[i] = it.fn
	}
	l.mu.RUnlock()

	for _, fn := range snapshot {
		fn(v)
	}
}

// Len returns the number of registered callbacks.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Signal adapts a no-argument callback to a List[struct{}].
func Signal(fn func()) func(struct{}) {
	return func(struct{}) { fn() }
}
