package catalog

import "context"

// Source is the data capability the view state reads through. The memory
// store implements it today; a networked backend can replace it without the
// callers changing.
type Source interface {
	// FetchAll returns a snapshot of the whole collection in catalog order.
	FetchAll(ctx context.Context) ([]Book, error)
	// FetchByID returns the book with id. found is false when no book matches.
	FetchByID(ctx context.Context, id int) (book Book, found bool, err error)
	// ToggleFavorite flips the favorite flag of book id and returns the
	// updated record, or ErrNotFound.
	ToggleFavorite(ctx context.Context, id int) (Book, error)
	// Favorites returns the current favorites in catalog order.
	Favorites() []Book
}

// Ensure MemoryStore implements Source at compile time.
var _ Source = (*MemoryStore)(nil)
