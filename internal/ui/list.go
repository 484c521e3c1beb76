package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/catalog"
)

// renderList renders the catalog view: category chips, search box and rows.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	var b strings.Builder
	b.WriteString(m.renderChips())
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")

	rowsHeight := max(1, height-4)
	switch {
	case !m.snapshot.Loaded && m.snapshot.Loading:
		b.WriteString(m.spinner.View() + styles.MutedText.Render(" Fetching books..."))
	case len(m.snapshot.Display) == 0:
		b.WriteString(styles.MutedText.Render(m.emptyListMessage()))
	default:
		b.WriteString(m.renderRows(m.snapshot.Display, m.cursor, rowsHeight))
	}

	title := "Books"
	if n, total := len(m.snapshot.Display), len(m.snapshot.Books); m.snapshot.Loaded && n != total {
		title += " (" + plural(n, "match", "matches") + ")"
	}
	return m.renderBox(title, b.String(), m.width, height, !m.search.Focused())
}

func (m Model) emptyListMessage() string {
	switch {
	case !m.snapshot.Loaded:
		return "No books loaded yet. Press r to reload."
	case m.favoritesOnly && m.snapshot.Query == "" && m.snapshot.Category == "":
		return "No favorites yet. Press f on a book to add one."
	default:
		return "No books match the current filters."
	}
}

// renderChips renders "All" plus one chip per category, highlighting the
// active one, then the favorites-only marker.
func (m Model) renderChips() string {
	styles := m.theme.Styles()
	chips := []string{chip(styles, "All", m.category == "")}
	for _, c := range m.snapshot.Categories {
		chips = append(chips, chip(styles, c, m.category != "" && catalog.SameCategory(c, m.category)))
	}
	if m.favoritesOnly {
		chips = append(chips, styles.Heart.Render("♥ only"))
	}
	line := strings.Join(chips, " ")
	if lipgloss.Width(line) > m.width-4 {
		// Too many chips for the terminal: fall back to the active one.
		active := "All"
		if m.category != "" {
			active = m.category
		}
		line = styles.MutedText.Render("category ") + chip(styles, active, true) + styles.FaintText.Render("  c/C to change")
	}
	return line
}

func chip(styles Styles, label string, on bool) string {
	if on {
		return styles.ChipOn.Render(label)
	}
	return styles.Chip.Render(label)
}

func (m Model) renderSearchLine() string {
	if m.search.Focused() || m.search.Value() != "" {
		return m.search.View()
	}
	return m.theme.Styles().FaintText.Render("/ to search")
}

// renderRows draws a window of books around cursor.
func (m Model) renderRows(books []catalog.Book, cursor, height int) string {
	styles := m.theme.Styles()
	width := max(20, m.width-4)
	start := visibleWindow(cursor, len(books), height)
	end := min(len(books), start+height)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := m.formatRow(books[i], width)
		if i == cursor {
			lines = append(lines, styles.Selected.Width(width).Render(row))
			continue
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

// formatRow lays out one book: heart, title, author, genre and year. The
// author column is dropped in compact mode.
func (m Model) formatRow(b catalog.Book, width int) string {
	heart := "  "
	if b.Favorite {
		heart = "♥ "
	}
	const yearWidth = 5
	genreWidth := min(16, width/5)
	authorWidth := 0
	if !m.compact {
		authorWidth = min(26, width/4)
	}
	titleWidth := max(8, width-2-yearWidth-genreWidth-authorWidth-3)

	cols := []string{heart + fit(b.Title, titleWidth)}
	if authorWidth > 0 {
		cols = append(cols, fit(b.Author, authorWidth))
	}
	cols = append(cols, fit(b.Genre, genreWidth), fit(formatYear(b.PublishedYear), yearWidth))
	return strings.Join(cols, " ")
}
