// Package mutation tracks the lifecycle of state-changing requests so the UI
// only ever reflects server-confirmed results.
package mutation

import (
	"context"
	"sync"
	"time"

	domainerrors "socksflow/internal/domain/errors"
)

// State is the lifecycle position of one mutation.
type State int

const (
	Idle State = iota
	Pending
	Confirmed
	Failed
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Key identifies a mutation: who, on what, doing what.
type Key struct {
	Session  string
	Resource string
	Action   string
}

func (k Key) String() string {
	return k.Session + "|" + k.Resource + "|" + k.Action
}

type entry struct {
	state   State
	err     error
	updated time.Time
}

// Tracker holds the tri-state of recent mutations. Finished entries are kept for
// retention so a follow-up GET can still ask how the last attempt ended.
type Tracker struct {
	mu        sync.Mutex
	entries   map[Key]*entry
	retention time.Duration
	now       func() time.Time
}

// DefaultRetention bounds how long finished outcomes are remembered.
const DefaultRetention = 5 * time.Minute

// NewTracker creates a tracker. A non-positive retention uses DefaultRetention.
func NewTracker(retention time.Duration) *Tracker {
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &Tracker{
		entries:   make(map[Key]*entry),
		retention: retention,
		now:       time.Now,
	}
}

// Begin moves key to Pending. It fails with ErrMutationInProgress while a
// previous mutation for the same key has not finished.
func (t *Tracker) Begin(key Key) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked()

	if e, ok := t.entries[key]; ok && e.state == Pending {
		return domainerrors.ErrMutationInProgress
	}
	t.entries[key] = &entry{state: Pending, updated: t.now()}

	return nil
}

// Finish records the server's answer: nil confirms, anything else fails.
func (t *Tracker) Finish(key Key, err error) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := Confirmed
	if err != nil {
		state = Failed
	}
	t.entries[key] = &entry{state: state, err: err, updated: t.now()}

	return state
}

// State returns the current state of key and, when Failed, the error.
func (t *Tracker) State(key Key) (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		return Idle, nil
	}

	return e.state, e.err
}

// Run executes fn as the mutation for key. fn receives a context that survives
// the caller going away, so an abandoned request still completes upstream.
func (t *Tracker) Run(ctx context.Context, key Key, fn func(ctx context.Context) error) error {
	if err := t.Begin(key); err != nil {
		return err
	}

	err := fn(context.WithoutCancel(ctx))
	t.Finish(key, err)

	return err
}

func (t *Tracker) pruneLocked() {
	cutoff := t.now().Add(-t.retention)
	for k, e := range t.entries {
		if e.state != Pending && e.updated.Before(cutoff) {
			delete(t.entries, k)
		}
	}
}
