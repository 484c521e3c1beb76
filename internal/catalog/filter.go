package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Criteria selects a subset of a collection. The zero value selects everything.
type Criteria struct {
	// Query keeps books whose title, author or genre contains it,
	// ignoring case. Empty disables the search filter.
	Query string
	// Category keeps books whose genre equals it, ignoring case.
	// Empty means no category filter.
	Category string
	// FavoritesOnly keeps favorites only.
	FavoritesOnly bool
}

// IsZero reports whether c filters nothing out.
func (c Criteria) IsZero() bool {
	return c.Query == "" && c.Category == "" && !c.FavoritesOnly
}

// Filter returns the books matching c in their original relative order.
// Each criterion is an independent predicate, so the order in which they are
// applied never changes the result. The input slice is not modified.
func Filter(books []Book, c Criteria) []Book {
	if c.IsZero() {
		return cloneBooks(books)
	}

	f := newFolder()
	category := f.fold(c.Category)
	query := f.fold(c.Query)

	out := make([]Book, 0, len(books))
	for _, b := range books {
		if c.FavoritesOnly && !b.Favorite {
			continue
		}
		if category != "" && f.fold(b.Genre) != category {
			continue
		}
		if query != "" && !f.contains(b, query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Categories lists the distinct genres of books in first-appearance order.
// Genres differing only by case collapse onto the first spelling seen.
func Categories(books []Book) []string {
	f := newFolder()
	seen := make(map[string]struct{}, len(books))
	var out []string
	for _, b := range books {
		if strings.TrimSpace(b.Genre) == "" {
			continue
		}
		key := f.fold(b.Genre)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b.Genre)
	}
	return out
}

// SameCategory reports whether two genre labels name the same category.
func SameCategory(a, b string) bool {
	f := newFolder()
	return f.fold(a) == f.fold(b)
}

// folder case-folds text after NFC normalisation so that precomposed and
// decomposed accents compare equal. A cases.Caser is stateful, so each
// folder must stay on one goroutine.
type folder struct {
	caser cases.Caser
}

func newFolder() *folder {
	return &folder{caser: cases.Fold()}
}

func (f *folder) fold(s string) string {
	if s == "" {
		return ""
	}
	return f.caser.String(norm.NFC.String(s))
}

func (f *folder) contains(b Book, query string) bool {
	return strings.Contains(f.fold(b.Title), query) ||
		strings.Contains(f.fold(b.Author), query) ||
		strings.Contains(f.fold(b.Genre), query)
}
