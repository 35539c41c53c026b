package calcx

import "sync"

// Observer receives a State snapshot.
type Observer func(State)

type subscription struct {
	id uint64
	fn Observer
}

// Store holds exactly one current State and notifies observers whenever it is
// replaced. Safe for concurrent use.
//
// Notifications are delivered in the order the replacements happened, and
// observers are called in registration order. Observers run synchronously; they
// may call Get or an unsubscribe function, but not Set, Update or Subscribe.
type Store struct {
	mu       sync.RWMutex
	notifyMu sync.Mutex
	state    State
	subs     []subscription
	nextID   uint64
}

// NewStore creates a Store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// Get returns the current State.
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn, calls it with the current State, and returns a
// function that deregisters it. Calling the returned function more than once
// is harmless.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.notifyMu.Lock()
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	current := s.state
	s.mu.Unlock()

	fn(current)
	s.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Set replaces the held State and notifies every observer.
func (s *Store) Set(next State) {
	s.Update(func(State) State { return next })
}

// Update replaces the held State with fn applied to it and returns the new
// State. fn runs under the store lock, so concurrent updates never lose each
// other's writes.
func (s *Store) Update(fn func(State) State) State {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next := fn(s.state)
	s.state = next
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return next
}
