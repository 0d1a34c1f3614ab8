package engine

import (
	"context"
	"sync"

	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// saver writes snapshots on a single goroutine. It holds at most one pending
// snapshot; enqueueing replaces any snapshot not yet picked up.
type saver struct {
	store storage.SnapshotStore
	opts  options

	mu       sync.Mutex
	pending  *storage.Snapshot
	inFlight bool
	settled  chan struct{}

	wake     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newSaver(store storage.SnapshotStore, opts options) *saver {
	s := &saver{
		store:   store,
		opts:    opts,
		settled: make(chan struct{}),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *saver) enqueue(snapshot storage.Snapshot) {
	s.mu.Lock()
	s.pending = &snapshot
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *saver) run() {
	defer close(s.done)
	for {
		select {
		case <-s.wake:
			s.drain()
		case <-s.stop:
			s.drain()
			return
		}
	}
}

func (s *saver) drain() {
	for {
		s.mu.Lock()
		next := s.pending
		if next == nil {
			s.mu.Unlock()
			return
		}
		s.pending = nil
		s.inFlight = true
		s.mu.Unlock()

		s.write(*next)

		s.mu.Lock()
		s.inFlight = false
		close(s.settled)
		s.settled = make(chan struct{})
		s.mu.Unlock()
	}
}

func (s *saver) write(snapshot storage.Snapshot) {
	if s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.saveTimeout)
	defer cancel()
	ctx, span := s.opts.tracer.Start(ctx, "scoreboard.save")
	defer span.End()
	span.SetAttributes(
		attribute.IntSlice("scoreboard.score", snapshot.Score[:]),
		attribute.IntSlice("scoreboard.game_score", snapshot.GameScore[:]),
		attribute.Int("scoreboard.ceiling", snapshot.MaxScore),
	)

	if err := s.store.Save(ctx, snapshot); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.opts.logf("scoreboard: save snapshot: %v", err)
	}
}

// flush blocks until nothing is pending or in flight.
func (s *saver) flush(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		s.mu.Lock()
		if s.pending == nil && !s.inFlight {
			s.mu.Unlock()
			return nil
		}
		settled := s.settled
		s.mu.Unlock()

		select {
		case <-settled:
		case <-s.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *saver) close(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
