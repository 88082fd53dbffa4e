// Package signal provides observable values with explicit
// subscribe/unsubscribe pairs.
package signal

import (
	"slices"
	"sync"

	"github.com/rs/xid"
)

type Listener[T any] func(value T)

type subscriber[T any] struct {
	id       xid.ID
	listener Listener[T]
}

// Signal holds a value and notifies its subscribers, in subscription order,
// every time a value is published.
type Signal[T any] struct {
	mu          sync.RWMutex
	value       T
	subscribers []subscriber[T]
}

// Value returns the last published value.
func (s *Signal[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value
}

// Publish stores value and calls every listener synchronously. Listeners run
// outside of the signal's lock and may subscribe or unsubscribe.
func (s *Signal[T]) Publish(value T) {
	s.mu.Lock()
	s.value = value
	subscribers := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, sub := range subscribers {
		if !s.isSubscribed(sub.id) {
			continue
		}

		sub.listener(value)
	}
}

// Subscribe registers listener. The returned subscription must be released
// with Unsubscribe once the caller is torn down.
func (s *Signal[T]) Subscribe(listener Listener[T]) *Subscription {
	id := xid.New()

	s.mu.Lock()
	s.subscribers = append(s.subscribers, subscriber[T]{id: id, listener: listener})
	s.mu.Unlock()

	return &Subscription{
		id: id,
		release: func() {
			s.unsubscribe(id)
		},
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Signal[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.subscribers)
}

func (s *Signal[T]) isSubscribed(id xid.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.ContainsFunc(s.subscribers, func(sub subscriber[T]) bool {
		return sub.id == id
	})
}

func (s *Signal[T]) unsubscribe(id xid.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber[T]) bool {
		return sub.id == id
	})
}

// New returns a signal holding initial.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}
