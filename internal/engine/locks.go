package engine

import (
	"context"
	"sync"
	"time"

	"mazad-engine/internal/auctionerrors"
)

// keyedLocks serializes all mutation of a single auction's state. Each
// auction id owns one slot; cross-auction operations never contend.
// Acquisition is bounded: callers that cannot enter the critical section in
// time get ErrRetryLater instead of queueing indefinitely.
type keyedLocks struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{slots: make(map[string]chan struct{})}
}

func (l *keyedLocks) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	return slot
}

func (l *keyedLocks) acquire(ctx context.Context, key string, timeout time.Duration) error {
	slot := l.slot(key)

	select {
	case slot <- struct{}{}:
		return nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		return nil
	case <-timer.C:
		return auctionerrors.ErrRetryLater
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *keyedLocks) release(key string) {
	<-l.slot(key)
}
