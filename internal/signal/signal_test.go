package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalPublishOrder(t *testing.T) {
	s := New(0)

	var calls []string

	first := s.Subscribe(func(v int) { calls = append(calls, "first") })
	defer first.Unsubscribe()

	second := s.Subscribe(func(v int) { calls = append(calls, "second") })
	defer second.Unsubscribe()

	s.Publish(42)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 42, s.Value())
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestSignalUnsubscribe(t *testing.T) {
	s := New("")

	received := 0
	sub := s.Subscribe(func(string) { received++ })
	require.Equal(t, 1, s.Subscribers())

	s.Publish("/")
	sub.Unsubscribe()
	sub.Unsubscribe()

	s.Publish("/about")

	assert.Equal(t, 1, received)
	assert.Equal(t, 0, s.Subscribers())
	assert.Equal(t, "/about", s.Value())
}

func TestSignalUnsubscribeDuringPublish(t *testing.T) {
	s := New(0)

	var second *Subscription
	secondCalls := 0

	first := s.Subscribe(func(int) { second.Unsubscribe() })
	defer first.Unsubscribe()

	second = s.Subscribe(func(int) { secondCalls++ })

	s.Publish(1)

	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, s.Subscribers())
}

func TestNilSubscription(t *testing.T) {
	var sub *Subscription
	assert.NotPanics(t, sub.Unsubscribe)
}
