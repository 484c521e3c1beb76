package ui

import (
	"strings"
)

// renderFavorites renders the favorites view with its own search box.
func (m Model) renderFavorites() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	var b strings.Builder
	if m.favSearch.Focused() || m.favSearch.Value() != "" {
		b.WriteString(m.favSearch.View())
	} else {
		b.WriteString(styles.FaintText.Render("/ to search favorites"))
	}
	b.WriteString("\n")

	switch {
	case len(m.snapshot.Favorites) > 0:
		b.WriteString(m.renderRows(m.snapshot.Favorites, m.favCursor, max(1, height-3)))
	case m.snapshot.FavoritesQuery != "":
		b.WriteString(styles.MutedText.Render("No favorites match \"" + m.snapshot.FavoritesQuery + "\"."))
	default:
		b.WriteString(styles.MutedText.Render("No favorites yet. Press f on a book to add one."))
	}

	return m.renderBox("Favorites", b.String(), m.width, height, !m.favSearch.Focused())
}
