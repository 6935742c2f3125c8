package interact

import (
	"context"
	"sync"
	"time"

	"github.com/roach88/skillbridge/internal/catalog"
	"github.com/roach88/skillbridge/internal/journal"
	"github.com/roach88/skillbridge/internal/session"
)

// Engine applies mutations to the catalog and the session toggle state.
//
// There is exactly one logical writer per session, but the mutex makes
// that assumption safe rather than implicit: if the engine is ever
// shared between goroutines (multiple handlers over one store), mutating
// operations are serialized. There is no cross-entity multi-step
// transaction to coordinate, so a single lock is sufficient.
//
// When a journal is attached, each mutation appends one entry before
// touching the store; a failed append fails the whole operation, so
// callers never observe a partial update.
type Engine struct {
	mu    sync.Mutex
	store *catalog.Store
	state *session.State
	log   *journal.Log
	clock *Clock
	ids   IDGenerator
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithJournal attaches an interaction journal. Without one, mutations
// are applied in memory only.
func WithJournal(l *journal.Log) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClockAt starts the engine's logical clock past a known sequence
// number. Use after journal replay so new entries continue the log.
func WithClockAt(seq int64) Option {
	return func(e *Engine) {
		e.clock = NewClockAt(seq)
	}
}

// WithIDGenerator overrides the entity id generator.
// Tests use NewFixedGenerator for deterministic ids.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithNow overrides the wall-clock source. Tests pin it.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an Engine over the given store and toggle state.
func New(store *catalog.Store, state *session.State, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		state: state,
		clock: NewClock(),
		ids:   UUIDv7Generator{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// record appends one entry to the journal, drawing the next seq.
// A nil journal makes this a no-op.
func (e *Engine) record(ctx context.Context, kind journal.Kind, userID, entityID string, payload any, at time.Time) error {
	if e.log == nil {
		return nil
	}
	entry, err := journal.NewEntry(e.clock.Next(), kind, userID, entityID, payload, at)
	if err != nil {
		return err
	}
	return e.log.Append(ctx, entry)
}
