package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
)

const defaultSaveTimeout = 30 * time.Second

// documentWriter persists document snapshots on a single goroutine. Saves never
// overlap and happen in enqueue order; snapshots that pile up while a save is
// running are coalesced so only the newest one is written.
type documentWriter struct {
	repo        portsrepo.DocumentWriter
	logger      *slog.Logger
	saveTimeout time.Duration

	mu       sync.Mutex
	pending  *domain.FinancialDocument
	queued   uint64 // sequence number of the newest enqueued snapshot
	saved    uint64 // sequence number of the newest snapshot a save was attempted for
	lastErr  error
	progress chan struct{} // closed after every save attempt
	closed   bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

func newDocumentWriter(repo portsrepo.DocumentWriter, logger *slog.Logger, saveTimeout time.Duration) *documentWriter {
	w := &documentWriter{
		repo:        repo,
		logger:      logger,
		saveTimeout: saveTimeout,
		progress:    make(chan struct{}),
		wake:        make(chan struct{}, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue schedules doc for saving and returns immediately.
func (w *documentWriter) enqueue(doc domain.FinancialDocument) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn("Document save requested after writer was closed")
		return
	}
	w.queued++
	w.pending = &doc
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *documentWriter) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *documentWriter) drain() {
	for {
		w.mu.Lock()
		if w.pending == nil {
			w.mu.Unlock()
			return
		}
		doc, seq := *w.pending, w.queued
		w.pending = nil
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), w.saveTimeout)
		err := w.repo.SaveDocument(ctx, doc)
		cancel()
		if err != nil {
			w.logger.Error("Failed to save document", slog.String("error", err.Error()), slog.Uint64("seq", seq))
		} else {
			w.logger.Debug("Document saved", slog.Uint64("seq", seq))
		}

		w.mu.Lock()
		w.saved = seq
		w.lastErr = err
		close(w.progress)
		w.progress = make(chan struct{})
		w.mu.Unlock()
	}
}

// flush waits until every snapshot enqueued before the call has been saved and
// returns the error of the newest save attempt.
func (w *documentWriter) flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.queued
	for w.saved < target {
		progress := w.progress
		w.mu.Unlock()
		select {
		case <-progress:
		case <-ctx.Done():
			return ctx.Err()
		}
		w.mu.Lock()
	}
	err := w.lastErr
	w.mu.Unlock()
	return err
}

// close saves whatever is still pending and stops the writer goroutine.
func (w *documentWriter) close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stop)
	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}
