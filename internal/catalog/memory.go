package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultFetchAllLatency mirrors the round trip a remote catalog would cost.
	DefaultFetchAllLatency = 500 * time.Millisecond
	// DefaultFetchOneLatency is the simulated cost of a single-record lookup.
	DefaultFetchOneLatency = 200 * time.Millisecond
)

// Options tune a MemoryStore. Zero latencies disable the artificial delay.
type Options struct {
	FetchAllLatency time.Duration
	FetchOneLatency time.Duration
	Logger          *slog.Logger
}

// DefaultOptions returns the stock latencies.
func DefaultOptions() Options {
	return Options{
		FetchAllLatency: DefaultFetchAllLatency,
		FetchOneLatency: DefaultFetchOneLatency,
	}
}

// MemoryStore is an in-process Source seeded once at startup. It is the only
// owner of the collection; all favorite changes go through ToggleFavorite.
type MemoryStore struct {
	mu    sync.RWMutex
	books []Book
	index map[int]int // id -> position in books

	fetchAll time.Duration
	fetchOne time.Duration
	log      *slog.Logger
}

// NewMemoryStore validates seed and builds a store from a private copy of it.
// Duplicate or non-positive ids and untitled books are rejected.
func NewMemoryStore(seed []Book, opts Options) (*MemoryStore, error) {
	if err := validateSeed(seed); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &MemoryStore{
		books:    cloneBooks(seed),
		index:    make(map[int]int, len(seed)),
		fetchAll: opts.FetchAllLatency,
		fetchOne: opts.FetchOneLatency,
		log:      log,
	}
	for i, b := range s.books {
		s.index[b.ID] = i
	}
	return s, nil
}

// FetchAll returns a copy of the collection after the fetch-all latency.
func (s *MemoryStore) FetchAll(ctx context.Context) ([]Book, error) {
	if err := wait(ctx, s.fetchAll); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	s.log.Debug("catalog fetch all", "count", len(s.books))
	return cloneBooks(s.books), nil
}

// FetchByID looks up one book after the single-record latency.
func (s *MemoryStore) FetchByID(ctx context.Context, id int) (Book, bool, error) {
	if err := wait(ctx, s.fetchOne); err != nil {
		return Book{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		s.log.Debug("catalog fetch miss", "book_id", id)
		return Book{}, false, nil
	}
	return s.books[i], true, nil
}

// ToggleFavorite replaces book id with a copy whose favorite flag is flipped.
// The read-modify-write happens under the write lock, so concurrent toggles
// are applied one at a time in lock order.
func (s *MemoryStore) ToggleFavorite(ctx context.Context, id int) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return Book{}, NotFoundf("book %d not found", id)
	}
	updated := s.books[i].WithFavorite(!s.books[i].Favorite)
	s.books[i] = updated
	s.log.Info("favorite toggled", "book_id", id, "favorite", updated.Favorite)
	return updated, nil
}

// Favorites returns the favorites in catalog order without delay.
func (s *MemoryStore) Favorites() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.books, Criteria{FavoritesOnly: true})
}

// Categories returns the distinct genres currently in the store.
func (s *MemoryStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Categories(s.books)
}

// Len returns the number of books held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// wait sleeps for d unless ctx ends first. The store lock is never held here.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateSeed(seed []Book) error {
	seen := make(map[int]struct{}, len(seed))
	for i, b := range seed {
		if err := validate.Struct(b); err != nil {
			return validationError(i, err)
		}
		if _, dup := seen[b.ID]; dup {
			return &Error{
				Code:    CodeValidation,
				Message: fmt.Sprintf("seed book %d: duplicate id %d", i, b.ID),
				Details: map[string]string{"id": "must be unique"},
			}
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

func validationError(pos int, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate seed book %d: %w", pos, err)
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = friendlyMessage(fe)
	}
	return &Error{
		Code:    CodeValidation,
		Message: fmt.Sprintf("seed book %d is invalid", pos),
		Details: details,
		cause:   err,
	}
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
