// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "sync"

// Store holds the current [State]. It is safe for concurrent use;
// subscribers run synchronously on the dispatching goroutine, after the
// store lock is released.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

func NewStore(initial State) *Store {
	return &Store{
		state:       initial.clone(),
		subscribers: make(map[int]func(State)),
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Dispatch applies actions in order and notifies subscribers once with the
// resulting state.
func (s *Store) Dispatch(actions ...Action) State {
	s.mu.Lock()
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
	next := s.state.clone()
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next.clone())
	}
	return next
}

// Subscribe registers fn for every later dispatch and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
