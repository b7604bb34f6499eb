// Package events provides a minimal fan-out notification primitive used to
// tell subscribers that fresh data landed. Events carry no payload; receivers
// are expected to re-read the data they care about.
package events

import (
	"context"
	"sync"
)

// ISubscription defines the contract for subscription objects
type ISubscription interface {
	// Chan returns a read-only channel receiving one signal per event
	Chan() <-chan struct{}
	// Cancel unsubscribes and closes the channel. Safe for repeated calls
	Cancel()
}

// ISubscriptionManager defines the contract for managing subscriptions
type ISubscriptionManager interface {
	// Subscribe creates a new subscription and returns it
	Subscribe() ISubscription
	// Unsubscribe removes a subscription by its channel
	Unsubscribe(ch chan struct{})
	// Emit sends a notification to all subscribers without blocking
	Emit(ctx context.Context)
}

type Subscription struct {
	ch   chan struct{}
	mgr  *SubscriptionManager
	once sync.Once
}

// Chan returns a read-only channel receiving one signal per event
func (s *Subscription) Chan() <-chan struct{} { return s.ch }

// Cancel unsubscribes and closes the channel. Safe for repeated calls
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.mgr.Unsubscribe(s.ch)
	})
}

type SubscriptionManager struct {
	mu          sync.RWMutex
	subscribers map[chan struct{}]struct{}
}

func NewSubscriptionManager() *SubscriptionManager {
	return &SubscriptionManager{
		subscribers: make(map[chan struct{}]struct{}),
	}
}

func (m *SubscriptionManager) Subscribe() ISubscription {
	// Buffer of one: pending notifications collapse instead of blocking Emit
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	m.subscribers[ch] = struct{}{}
	m.mu.Unlock()

	return &Subscription{ch: ch, mgr: m}
}

func (m *SubscriptionManager) Unsubscribe(ch chan struct{}) {
	m.mu.Lock()
	if _, ok := m.subscribers[ch]; ok {
		delete(m.subscribers, ch)
		close(ch)
	}
	m.mu.Unlock()
}

// Emit sends a notification to all subscribers. A subscriber whose channel is
// full keeps its single pending signal; one is enough to trigger a re-read.
func (m *SubscriptionManager) Emit(ctx context.Context) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for sub := range m.subscribers {
		select {
		case <-ctx.Done():
			return
		case sub <- struct{}{}:
		default:
		}
	}
}
