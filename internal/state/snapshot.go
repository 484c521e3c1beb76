package state

import (
	"fmt"
	"time"

	"github.com/five82/folio/internal/catalog"
)

// Snapshot is the observable view state at one point in time. Every slice and
// pointer in it is a private copy, so holders may keep it as long as they like.
type Snapshot struct {
	SessionID string

	// Books mirrors the last successful load, patched by favorite toggles.
	Books []catalog.Book
	// Display is Books filtered by Query, Category and FavoritesOnly.
	Display       []catalog.Book
	Query         string
	Category      string
	FavoritesOnly bool

	// Favorites lists the favorite Books matching FavoritesQuery.
	Favorites      []catalog.Book
	FavoritesQuery string
	Categories     []string

	SelectedID      int
	Selected        *catalog.Book
	SelectedLoading bool

	Loading             bool
	Loaded              bool
	Err                 error
	LastUpdated         time.Time
	ConsecutiveFailures int // LoadAll failures since the last success
}

// IsOffline reports whether the catalog has failed to load repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Criteria returns the filter that produced Display.
func (s Snapshot) Criteria() catalog.Criteria {
	return catalog.Criteria{Query: s.Query, Category: s.Category, FavoritesOnly: s.FavoritesOnly}
}

// view holds the stored (non-derived) fields of a Snapshot.
type view struct {
	books          []catalog.Book
	query          string
	category       string
	favoritesOnly  bool
	favoritesQuery string

	selectedID int
	selected   *catalog.Book

	loaded      bool
	err         error
	lastUpdated time.Time
	failures    int
}

// snapshot derives the display lists from v. Derived lists are recomputed on
// every call and never cached.
func (v view) snapshot(sessionID string, loading, selectedLoading bool) Snapshot {
	snap := Snapshot{
		SessionID:           sessionID,
		Books:               cloneBooks(v.books),
		Query:               v.query,
		Category:            v.category,
		FavoritesOnly:       v.favoritesOnly,
		FavoritesQuery:      v.favoritesQuery,
		Categories:          catalog.Categories(v.books),
		SelectedID:          v.selectedID,
		SelectedLoading:     selectedLoading,
		Loading:             loading,
		Loaded:              v.loaded,
		LastUpdated:         v.lastUpdated,
		ConsecutiveFailures: v.failures,
	}
	snap.Display = catalog.Filter(v.books, snap.Criteria())
	snap.Favorites = catalog.Filter(v.books, catalog.Criteria{Query: v.favoritesQuery, FavoritesOnly: true})
	if v.selected != nil {
		b := *v.selected
		snap.Selected = &b
	}
	if v.err != nil {
		snap.Err = fmt.Errorf("%w", v.err)
	}
	return snap
}

func cloneBooks(books []catalog.Book) []catalog.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]catalog.Book, len(books))
	copy(dup, books)
	return dup
}
