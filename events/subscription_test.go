package events

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionManager_EmitAndReceive(t *testing.T) {
	mgr := NewSubscriptionManager()
	sub := mgr.Subscribe()
	defer sub.Cancel()

	mgr.Emit(context.Background())

	select {
	case <-sub.Chan():
	case <-time.After(time.Second):
		t.Fatal("expected a notification")
	}
}

func TestSubscriptionManager_EmitDoesNotBlockOnFullChannel(t *testing.T) {
	mgr := NewSubscriptionManager()
	sub := mgr.Subscribe()
	defer sub.Cancel()

	done := make(chan struct{})
	go func() {
		// Nobody drains the channel; both emits must return
		mgr.Emit(context.Background())
		mgr.Emit(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full subscriber channel")
	}
}

func TestSubscription_Watch(t *testing.T) {
	mgr := NewSubscriptionManager()

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mgr.Subscribe().Watch(ctx, func() { calls.Add(1) }, true)

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	mgr.Emit(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestSubscription_CancelIsIdempotent(t *testing.T) {
	mgr := NewSubscriptionManager()
	sub := mgr.Subscribe()

	sub.Cancel()
	sub.Cancel()

	// Emitting after cancel must not panic on the closed channel
	mgr.Emit(context.Background())
}
