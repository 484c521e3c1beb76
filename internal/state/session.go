package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/folio/internal/catalog"
)

// Session is the view state controller for one UI run. All methods are safe
// for concurrent use. Methods that reach the catalog block for its latency,
// so callers on a render loop should run them in the background.
type Session struct {
	source catalog.Source
	log    *slog.Logger
	id     string

	// toggleMu orders favorite toggles so journal sequence numbers follow
	// the order in which the source applied them.
	toggleMu sync.Mutex

	mu              sync.Mutex
	view            view
	gen             uint64 // bumped by Reset; older loads are dropped
	seq             uint64 // last journalled toggle
	journal         []toggleEntry
	reads           map[uint64]int // start seq -> in-flight loads
	loading         int
	selectedLoading int
	observers       map[int]func(Snapshot)
	nextObserver    int

	published uint64 // stamp of the last snapshot taken for observers

	// notifyMu serializes observer callbacks. It is never taken while mu is
	// held, so callbacks may read the session.
	notifyMu  sync.Mutex
	delivered uint64 // stamp of the last snapshot handed to observers
}

type toggleEntry struct {
	seq      uint64
	id       int
	favorite bool
}

// New creates a session reading through source. A nil logger discards logs.
func New(source catalog.Source, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	return &Session{
		source:    source,
		log:       log.With("session", id),
		id:        id,
		reads:     make(map[uint64]int),
		observers: make(map[int]func(Snapshot)),
	}
}

// ID returns the session identifier attached to its log records.
func (s *Session) ID() string {
	return s.id
}

// Snapshot returns a copy of the current view state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after state changes and
// returns a function that removes it. Snapshots arrive in order; one that is
// already superseded when its turn comes is skipped. Callbacks run on the
// goroutine that made the change. They may call Snapshot but must not call
// back into the session's mutating methods.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// LoadAll fetches the whole collection and replaces Books with it. Favorite
// toggles that finished while the fetch was in flight are re-applied to the
// result, so a slow load never reverts a newer toggle. A cancelled ctx
// discards the result without recording an error.
func (s *Session) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	gen, start := s.gen, s.seq
	s.reads[start]++
	s.loading++
	s.publishLocked()

	books, err := s.source.FetchAll(ctx)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Debug("dropping load from previous session state")
		return err
	}
	s.endReadLocked(start)
	s.loading--

	switch {
	case errors.Is(err, context.Canceled):
		s.log.Debug("load all abandoned")
		s.publishLocked()
		return err
	case err != nil:
		loadErr := asCatalogError(err)
		s.view.err = loadErr
		s.view.failures++
		s.view.lastUpdated = time.Now()
		failures := s.view.failures
		s.publishLocked()
		s.log.Warn("load all failed", "error", err, "consecutive_failures", failures)
		return loadErr
	}

	reapplied := s.replayLocked(books, start)
	s.view.books = books
	s.view.loaded = true
	s.view.err = nil
	s.view.failures = 0
	s.view.lastUpdated = time.Now()
	s.refreshSelectedLocked()
	s.publishLocked()
	s.log.Debug("catalog loaded", "count", len(books), "reapplied_toggles", reapplied)
	return nil
}

// LoadByID fetches one book for the detail view. The result only lands if id
// is still the selected id when the fetch completes. A missing book leaves
// Selected empty and records a not-found error.
func (s *Session) LoadByID(ctx context.Context, id int) error {
	s.mu.Lock()
	gen, start := s.gen, s.seq
	s.view.selectedID = id
	if s.view.selected != nil && s.view.selected.ID != id {
		s.view.selected = nil
	}
	s.reads[start]++
	s.selectedLoading++
	s.publishLocked()

	book, found, err := s.source.FetchByID(ctx, id)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return err
	}
	s.endReadLocked(start)
	s.selectedLoading--

	if s.view.selectedID != id {
		s.publishLocked()
		s.log.Debug("dropping superseded detail load", "book_id", id)
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		s.publishLocked()
		return err
	case err != nil:
		loadErr := asCatalogError(err)
		s.view.err = loadErr
		s.publishLocked()
		s.log.Warn("load book failed", "book_id", id, "error", err)
		return loadErr
	case !found:
		notFound := catalog.NotFoundf("book %d not found", id)
		s.view.selected = nil
		s.view.err = notFound
		s.publishLocked()
		s.log.Info("book not found", "book_id", id)
		return notFound
	}

	one := []catalog.Book{book}
	s.replayLocked(one, start)
	s.view.selected = &one[0]
	s.publishLocked()
	return nil
}

// SetQuery replaces the search text. The text is matched as given.
func (s *Session) SetQuery(text string) {
	s.mu.Lock()
	s.view.query = text
	s.publishLocked()
}

// SetCategory filters Display to one genre. An empty genre clears the filter.
func (s *Session) SetCategory(genre string) {
	s.mu.Lock()
	s.view.category = genre
	s.publishLocked()
}

// SetFavoritesOnly limits Display to favorites when on.
func (s *Session) SetFavoritesOnly(on bool) {
	s.mu.Lock()
	s.view.favoritesOnly = on
	s.publishLocked()
}

// SetFavoritesQuery replaces the search text of the favorites list.
func (s *Session) SetFavoritesQuery(text string) {
	s.mu.Lock()
	s.view.favoritesQuery = text
	s.publishLocked()
}

// ToggleFavorite flips book id in the catalog and patches the local copy of
// that one record instead of reloading the collection.
func (s *Session) ToggleFavorite(ctx context.Context, id int) error {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	book, err := s.source.ToggleFavorite(ctx, id)

	s.mu.Lock()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.mu.Unlock()
			return err
		}
		toggleErr := asCatalogError(err)
		s.view.err = toggleErr
		s.publishLocked()
		s.log.Info("toggle favorite failed", "book_id", id, "error", err)
		return toggleErr
	}

	s.seq++
	if len(s.reads) > 0 {
		s.journal = append(s.journal, toggleEntry{seq: s.seq, id: id, favorite: book.Favorite})
	}
	for i := range s.view.books {
		if s.view.books[i].ID == id {
			s.view.books[i] = book
		}
	}
	if s.view.selected != nil && s.view.selected.ID == id {
		patched := book
		s.view.selected = &patched
	}
	s.publishLocked()
	s.log.Debug("favorite applied", "book_id", id, "favorite", book.Favorite)
	return nil
}

// ClearError dismisses the current error and nothing else.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.view.err = nil
	s.publishLocked()
}

// Reset returns the view state to its defaults. Loads still in flight are
// dropped when they complete.
func (s *Session) Reset() {
	s.mu.Lock()
	s.gen++
	s.view = view{}
	s.loading = 0
	s.selectedLoading = 0
	s.reads = make(map[uint64]int)
	s.journal = nil
	s.publishLocked()
	s.log.Debug("session reset")
}

// replayLocked re-applies journalled toggles newer than start to books and
// returns how many records changed.
func (s *Session) replayLocked(books []catalog.Book, start uint64) int {
	changed := 0
	for _, e := range s.journal {
		if e.seq <= start {
			continue
		}
		for i := range books {
			if books[i].ID == e.id && books[i].Favorite != e.favorite {
				books[i] = books[i].WithFavorite(e.favorite)
				changed++
			}
		}
	}
	return changed
}

// endReadLocked retires one in-flight load and prunes journal entries no
// remaining load can need.
func (s *Session) endReadLocked(start uint64) {
	if s.reads[start] <= 1 {
		delete(s.reads, start)
	} else {
		s.reads[start]--
	}
	if len(s.reads) == 0 {
		s.journal = nil
		return
	}
	oldest := start
	first := true
	for seq := range s.reads {
		if first || seq < oldest {
			oldest, first = seq, false
		}
	}
	keep := s.journal[:0]
	for _, e := range s.journal {
		if e.seq > oldest {
			keep = append(keep, e)
		}
	}
	s.journal = keep
}

// refreshSelectedLocked keeps Selected in step with freshly loaded Books.
func (s *Session) refreshSelectedLocked() {
	if s.view.selected == nil {
		return
	}
	for _, b := range s.view.books {
		if b.ID == s.view.selected.ID {
			fresh := b
			s.view.selected = &fresh
			return
		}
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return s.view.snapshot(s.id, s.loading > 0, s.selectedLoading > 0)
}

// publishLocked snapshots the state, releases s.mu and notifies observers.
// It must be called with s.mu held. A snapshot that lost the race to
// notifyMu against a newer one is dropped, so observers only move forward.
func (s *Session) publishLocked() {
	s.published++
	stamp := s.published
	snap := s.snapshotLocked()
	observers := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if stamp <= s.delivered {
		return
	}
	s.delivered = stamp
	for _, fn := range observers {
		fn(snap)
	}
}

// asCatalogError keeps catalog errors as they are and wraps anything else,
// deadlines included, as a load failure.
func asCatalogError(err error) error {
	if catalog.ErrorCode(err) != "" {
		return err
	}
	return catalog.LoadFailure(fmt.Errorf("fetch: %w", err))
}
