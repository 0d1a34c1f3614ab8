package engine

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Observer receives the committed state after every change.
type Observer func(domain.State)

type subscription struct {
	id int
	fn Observer
}

// Engine is the session object that owns one scoreboard State.
type Engine struct {
	store storage.SnapshotStore
	opts  options

	mu           sync.Mutex
	state        domain.State
	loadStarted  bool
	loaded       bool
	closed       bool
	observers    []subscription
	nextObserver int
	saver        *saver
	commitSeq    uint64

	// notifyMu orders fan-out; deliveredSeq is guarded by it.
	notifyMu     sync.Mutex
	deliveredSeq uint64
}

// New creates an engine backed by store. Call Load before Dispatch.
func New(store storage.SnapshotStore, opts ...Option) *Engine {
	o := newOptions(opts)
	return &Engine{
		store: store,
		opts:  o,
		state: domain.NewState(o.defaultCeiling),
	}
}

// Load reads the persisted snapshot once. Any read failure, including an
// empty store, falls back to the default state and is only logged. Load
// never writes to the store.
func (e *Engine) Load(ctx context.Context) (domain.State, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return domain.State{}, ErrClosed
	}
	if e.loadStarted {
		e.mu.Unlock()
		return domain.State{}, ErrAlreadyLoaded
	}
	e.loadStarted = true
	e.mu.Unlock()

	ctx, span := e.opts.tracer.Start(ctx, "scoreboard.load")
	defer span.End()

	state := domain.NewState(e.opts.defaultCeiling)
	if e.store == nil {
		e.opts.logf("scoreboard: no snapshot store configured; starting from defaults")
	} else {
		snapshot, err := e.store.Load(ctx)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			e.opts.logf("scoreboard: no saved snapshot; starting from defaults")
		case err != nil:
			span.RecordError(err)
			e.opts.logf("scoreboard: load snapshot: %v; starting from defaults", err)
		default:
			loaded := snapshot.State()
			state = loaded.Repair(e.opts.defaultCeiling)
			if state != loaded {
				e.opts.logf("scoreboard: repaired loaded snapshot %s -> %s", loaded, state)
			}
		}
	}
	span.SetAttributes(stateAttributes(state)...)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.State{}, ErrClosed
	}
	e.state = state
	e.loaded = true
	e.saver = newSaver(e.store, e.opts)
	return state, nil
}

// Dispatch applies action to the current state. Rejected actions leave the
// state untouched and are not persisted. Transitions that change nothing do
// not notify observers or write to the store.
func (e *Engine) Dispatch(ctx context.Context, action domain.Action) (domain.State, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := e.opts.tracer.Start(ctx, "scoreboard.dispatch", trace.WithAttributes(
		attribute.String("scoreboard.action", string(action.Type)),
	))
	defer span.End()
	if action.UsesQuarter() {
		span.SetAttributes(attribute.Int("scoreboard.quarter", int(action.Quarter)))
	}

	e.mu.Lock()
	if e.closed {
		state := e.state
		e.mu.Unlock()
		span.SetStatus(codes.Error, ErrClosed.Error())
		return state, ErrClosed
	}
	if !e.loaded {
		state := e.state
		e.mu.Unlock()
		span.SetStatus(codes.Error, ErrNotLoaded.Error())
		return state, ErrNotLoaded
	}

	current := e.state
	next, err := domain.Reduce(current, action)
	if err != nil {
		e.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.opts.logf("scoreboard: reject %s: %v", action, err)
		return current, err
	}
	if next == current {
		e.mu.Unlock()
		span.SetAttributes(attribute.Bool("scoreboard.changed", false))
		return next, nil
	}

	e.state = next
	e.commitSeq++
	seq := e.commitSeq
	e.saver.enqueue(storage.FromState(next))
	observers := slices.Clone(e.observers)
	e.mu.Unlock()

	span.SetAttributes(attribute.Bool("scoreboard.changed", true))
	span.SetAttributes(stateAttributes(next)...)
	e.notify(seq, next, observers)
	return next, nil
}

// notify delivers a committed state unless a later commit was already
// delivered, so observers never move backwards.
func (e *Engine) notify(seq uint64, state domain.State, observers []subscription) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()
	if seq <= e.deliveredSeq {
		return
	}
	e.deliveredSeq = seq
	for _, sub := range observers {
		sub.fn(state)
	}
}

// State returns the current state.
func (e *Engine) State() domain.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Loaded reports whether Load has completed.
func (e *Engine) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Subscribe registers fn for state-changed notifications. Observers run on
// the dispatching goroutine, in subscription order, after the state is
// committed. Notifications arrive in commit order; when dispatches overlap a
// superseded state may be skipped. Observers may read State but must not
// call Dispatch. The returned function removes the subscription.
func (e *Engine) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextObserver++
	id := e.nextObserver
	e.observers = append(e.observers, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.observers = slices.DeleteFunc(e.observers, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}

// Flush waits until every committed state has been handed to the store.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	s := e.saver
	e.mu.Unlock()
	if s == nil {
		return nil
	}
	return s.flush(ctx)
}

// Close stops accepting actions and waits, bounded by ctx, for the last
// pending snapshot to be written.
func (e *Engine) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	s := e.saver
	e.mu.Unlock()

	if s == nil {
		return nil
	}
	return s.close(ctx)
}

func stateAttributes(state domain.State) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.IntSlice("scoreboard.score", state.Score[:]),
		attribute.IntSlice("scoreboard.game_score", state.GameScore[:]),
		attribute.Int("scoreboard.ceiling", state.Ceiling),
	}
}
