package internal

import (
	"context"
	"fmt"
)

// CtxLock uses a Go channel to provide atomic locking and unlocking with context.Context cancellation
// support. One lock guards a whole tree, children are never locked on their own.
type CtxLock struct {
	ch chan struct{}
}

func NewCtxLock() *CtxLock {
	return &CtxLock{
		// buffered channel with a size of 1,
		// so the sender will be blocked when the channel is full
		ch: make(chan struct{}, 1),
	}
}

func (l *CtxLock) AcquireCtx(ctx context.Context) error {
	if l.ch == nil {
		return fmt.Errorf("failed to init lock")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		// context is either timeout or cancelled
		return ctx.Err()
	case l.ch <- struct{}{}:
		return nil
	}
}

// Release never blocks, releasing an unlocked lock is a programming error.
func (l *CtxLock) Release() {
	select {
	case <-l.ch:
	default:
		panic("release of an unlocked CtxLock")
	}
}
