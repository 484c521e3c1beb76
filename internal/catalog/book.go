// Package catalog owns the book collection: the Book value type, the Source
// capability the rest of folio reads through, the in-memory store backing it,
// and the pure filter used to derive display lists.
package catalog

// Book is a catalog entry. Values are treated as immutable; a changed record
// replaces the old one as a whole.
type Book struct {
	ID            int     `json:"id" validate:"gt=0"`
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author"`
	Genre         string  `json:"genre"`
	Description   string  `json:"description"`
	PublishedYear int     `json:"publishedYear"`
	Rating        float64 `json:"rating"`
	CoverRef      string  `json:"coverRef"`
	Link          string  `json:"link" validate:"omitempty,url"`
	Favorite      bool    `json:"favorite"`
}

// WithFavorite returns a copy of b with the favorite flag set to v.
func (b Book) WithFavorite(v bool) Book {
	b.Favorite = v
	return b
}

func cloneBooks(books []Book) []Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]Book, len(books))
	copy(dup, books)
	return dup
}
