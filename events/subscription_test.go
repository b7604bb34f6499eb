package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionManager_EmitReachesAllSubscribers(t *testing.T) {
	sm := NewSubscriptionManager()
	ctx := context.Background()

	subs := make([]ISubscription, 5)
	for i := range subs {
		subs[i] = sm.Subscribe()
	}

	sm.Emit(ctx)

	for i, sub := range subs {
		select {
		case <-sub.Chan():
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive the notification", i)
		}
	}
}

func TestSubscription_CancelClosesChannel(t *testing.T) {
	sm := NewSubscriptionManager()

	sub := sm.Subscribe()
	sub.Cancel()

	_, open := <-sub.Chan()
	assert.False(t, open, "channel should be closed after Cancel")

	// Repeated cancels and emits after cancel must not panic
	sub.Cancel()
	sm.Emit(context.Background())
}

func TestSubscriptionManager_PendingNotificationsCollapse(t *testing.T) {
	sm := NewSubscriptionManager()
	ctx := context.Background()

	sub := sm.Subscribe()
	defer sub.Cancel()

	// Nobody is reading: repeated emits collapse into one pending signal
	sm.Emit(ctx)
	sm.Emit(ctx)
	sm.Emit(ctx)

	select {
	case <-sub.Chan():
	case <-time.After(time.Second):
		t.Fatal("expected one pending notification")
	}

	select {
	case <-sub.Chan():
		t.Fatal("expected no second pending notification")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscriptionManager_ImplementsInterface(t *testing.T) {
	var _ ISubscriptionManager = NewSubscriptionManager()
	require.NotNil(t, NewSubscriptionManager().Subscribe())
}
