// Package contact implements the simulated contact-form submission flow.
//
// A submission moves through Idle -> Submitting -> Success -> Idle. Both
// delays are simulated latency; no message leaves the process and every
// submission succeeds.
package contact

import (
	"sync"
	"time"

	"caresteward/showcase/internal/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultSubmitDelay is the simulated time spent in Submitting.
	DefaultSubmitDelay = 1500 * time.Millisecond

	// DefaultResetDelay is how long the confirmation stays up before the
	// form resets.
	DefaultResetDelay = 3 * time.Second
)

// Options configures a Flow. Zero values fall back to defaults.
type Options struct {
	Clock       clock.Clock
	SubmitDelay time.Duration
	ResetDelay  time.Duration
	Logger      *zap.Logger

	// NewID generates receipt IDs. Defaults to a random UUID.
	NewID func() string
}

// Flow is the submission state machine for one form instance. It is safe
// for concurrent use; timer continuations and caller events are
// serialized by an internal mutex.
type Flow struct {
	mu sync.Mutex

	clock       clock.Clock
	submitDelay time.Duration
	resetDelay  time.Duration
	log         *zap.Logger
	newID       func() string

	state   State
	fields  Fields
	receipt *Receipt

	// pending is the single scheduled transition, if any. gen is bumped
	// whenever pending is replaced or the flow is closed so a callback
	// that lost the race with Stop can detect it is stale.
	pending clock.Timer
	gen     uint64

	// submissions counts accepted Submit calls. visits holds the snapshot
	// taken the last time each state was entered, tagged with its
	// submission.
	submissions uint64
	visits      [StateSuccess + 1]visit

	closed bool
	subs   []chan struct{}
}

type visit struct {
	submission uint64
	snap       Snapshot
}

// NewFlow returns an idle flow with empty fields.
func NewFlow(opts Options) *Flow {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.NewString() }
	}

	return &Flow{
		clock:       opts.Clock,
		submitDelay: opts.SubmitDelay,
		resetDelay:  opts.ResetDelay,
		log:         opts.Logger.Named("contact"),
		newID:       opts.NewID,
	}
}

// Snapshot returns the current state, fields and receipt.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

// snapshot copies the current state. Caller must hold f.mu.
func (f *Flow) snapshot() Snapshot {
	s := Snapshot{State: f.state, Fields: f.fields}
	if f.receipt != nil {
		r := *f.receipt
		s.Receipt = &r
	}
	return s
}

// State returns the current submission state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetField edits a single field. Edits are ignored while the form is busy
// or after Close.
func (f *Flow) SetField(field Field, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.state != StateIdle {
		return false
	}
	f.fields = f.fields.With(field, value)
	return true
}

// Submit starts a submission with the given fields. It only has an effect
// from StateIdle: the flow enters StateSubmitting before Submit returns and
// true is reported. In any other state, or after Close, Submit is a no-op
// and reports false.
//
// Blank fields are accepted.
func (f *Flow) Submit(fields Fields) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.state != StateIdle {
		f.log.Debug("submit ignored", zap.Stringer("state", f.state), zap.Bool("closed", f.closed))
		return false
	}

	f.submissions++
	f.fields = fields
	f.receipt = nil
	f.enter(StateSubmitting)
	f.schedule(f.submitDelay, f.complete)

	f.log.Debug("submission started", zap.Int("missing_fields", len(fields.Missing())))
	f.notify()
	return true
}

// Close cancels any pending transition and detaches subscribers. The flow
// is frozen afterwards. Close is idempotent.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	f.cancelPending()

	for _, ch := range f.subs {
		close(ch)
	}
	f.subs = nil
	f.log.Debug("flow closed", zap.Stringer("state", f.state))
}

// Subscribe returns a channel that receives a value after every state
// change. Notifications coalesce: a slow reader sees at least one value
// after the latest change. The channel is closed by Close.
func (f *Flow) Subscribe() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan struct{}, 1)
	if f.closed {
		close(ch)
		return ch
	}
	f.subs = append(f.subs, ch)
	return ch
}

// complete moves Submitting -> Success and schedules the reset.
func (f *Flow) complete() {
	f.receipt = &Receipt{
		ID:          f.newID(),
		SubmittedAt: f.clock.Now(),
		Fields:      f.fields,
	}
	f.enter(StateSuccess)
	f.schedule(f.resetDelay, f.reset)

	f.log.Info("submission accepted", zap.String("receipt", f.receipt.ID))
	f.notify()
}

// reset moves Success -> Idle and clears the form.
func (f *Flow) reset() {
	f.fields = Fields{}
	f.receipt = nil
	f.pending = nil
	f.enter(StateIdle)

	f.log.Debug("form reset")
	f.notify()
}

// enter switches to state s and records the visit. Caller must hold f.mu.
func (f *Flow) enter(s State) {
	f.state = s
	f.visits[s] = visit{submission: f.submissions, snap: f.snapshot()}
}

// reachedLocked reports whether the flow is in want, or entered it
// during the latest submission, and returns the snapshot taken at that
// moment. Caller must hold f.mu.
func (f *Flow) reachedLocked(want State) (Snapshot, bool) {
	if f.state == want {
		return f.snapshot(), true
	}
	if want < StateIdle || int(want) >= len(f.visits) || f.submissions == 0 {
		return Snapshot{}, false
	}
	v := f.visits[want]
	if v.submission != f.submissions {
		return Snapshot{}, false
	}
	return v.snap, true
}

// schedule arms the single pending transition. The step runs with f.mu
// held. Caller must hold f.mu.
func (f *Flow) schedule(d time.Duration, step func()) {
	f.cancelPending()
	gen := f.gen
	f.pending = f.clock.AfterFunc(d, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.closed || gen != f.gen {
			return
		}
		step()
	})
}

// cancelPending stops the pending timer, if any. Caller must hold f.mu.
func (f *Flow) cancelPending() {
	f.gen++
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
}

// notify wakes every subscriber without blocking. Caller must hold f.mu.
func (f *Flow) notify() {
	for _, ch := range f.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
