package floating

import (
	"sync"

	"github.com/grindlemire/go-floating/internal/notify"
)

// Ref is a reference to an Element that may not exist yet.
// Hosts set it when the element mounts and clear it on unmount; the engine
// subscribes to those changes. Thread-safe.
type Ref struct {
	mu        sync.RWMutex
	value     Element
	listeners notify.List[Element]
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// RefTo creates a Ref already holding el.
func RefTo(el Element) *Ref {
	return &Ref{value: el}
}

// Set stores the element in this ref and notifies subscribers.
// Passing nil marks the element as unmounted.
func (r *Ref) Set(el Element) {
	r.mu.Lock()
	r.value = el
	r.mu.Unlock()

	r.listeners.Emit(el)
}

// El returns the referenced element, or nil if not yet set.
// A nil *Ref behaves like an empty one.
func (r *Ref) El() Element {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref holds an element.
func (r *Ref) IsSet() bool {
	return r.El() != nil
}

// Subscribe registers fn to run after every Set.
func (r *Ref) Subscribe(fn func(Element)) (cancel func()) {
	return r.listeners.Add(fn)
}
