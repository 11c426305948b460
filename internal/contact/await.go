package contact

import (
	"context"
	"errors"
)

// ErrClosed is returned by Await when the flow is closed before reaching
// the requested state.
var ErrClosed = errors.New("contact: flow closed")

// Await blocks until the flow is in state want, or has entered it during
// the latest submission, and returns the snapshot taken when want was
// reached. Notifications coalesce, so the flow may already be past want
// when Await wakes. It returns early with ctx.Err() when ctx is done, or
// ErrClosed once the flow is closed.
func (f *Flow) Await(ctx context.Context, want State) (Snapshot, error) {
	ch := f.Subscribe()
	defer f.unsubscribe(ch)

	for {
		if s, ok := f.reached(want); ok {
			return s, nil
		}
		select {
		case <-ctx.Done():
			return Snapshot{}, ctx.Err()
		case _, ok := <-ch:
			if !ok {
				return Snapshot{}, ErrClosed
			}
		}
	}
}

func (f *Flow) reached(want State) (Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reachedLocked(want)
}

// unsubscribe detaches a channel returned by Subscribe. Channels already
// closed by Close are ignored.
func (f *Flow) unsubscribe(ch <-chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, sub := range f.subs {
		if sub == ch {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return
		}
	}
}
