package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/catalog"
)

// resizeViewports sizes the detail and log viewports to the content area.
func (m *Model) resizeViewports() {
	w := max(10, m.width-2)
	h := max(1, m.contentHeight()-2)
	if m.detailViewport.Width == 0 && m.detailViewport.Height == 0 {
		m.detailViewport = viewport.New(w, h)
	} else {
		m.detailViewport.Width = w
		m.detailViewport.Height = h
	}
	if m.logViewport.Width == 0 && m.logViewport.Height == 0 {
		m.logViewport = viewport.New(w, h)
	} else {
		m.logViewport.Width = w
		m.logViewport.Height = h
	}
}

// updateDetailViewport re-renders the open book into the detail viewport.
func (m *Model) updateDetailViewport() {
	if m.detailViewport.Width == 0 {
		return
	}
	m.detailViewport.SetContent(m.detailContent(m.detailViewport.Width - 2))
}

// detailBook returns the loaded record for the open book, if the session
// holds it.
func (m Model) detailBook() (catalog.Book, bool) {
	sel := m.snapshot.Selected
	if sel == nil || sel.ID != m.detailID {
		return catalog.Book{}, false
	}
	return *sel, true
}

// detailContent renders the open book as a set of labelled sections.
func (m Model) detailContent(width int) string {
	styles := m.theme.Styles()
	width = max(20, width)

	book, ok := m.detailBook()
	if !ok {
		switch {
		case m.snapshot.SelectedLoading:
			return m.spinner.View() + styles.MutedText.Render(" Loading book...")
		case errors.Is(m.snapshot.Err, catalog.ErrNotFound):
			return styles.WarningText.Render(fmt.Sprintf("Book #%d was not found.", m.detailID)) +
				"\n\n" + styles.FaintText.Render("Press esc to go back.")
		default:
			return styles.MutedText.Render("No book selected.")
		}
	}

	var b strings.Builder
	title := styles.Title.Render(wrap(book.Title, width))
	if book.Favorite {
		title += " " + styles.Heart.Render("♥")
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(book.Author))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted)).Width(10)
	rows := [][2]string{
		{"Genre", book.Genre},
		{"Published", formatYear(book.PublishedYear)},
		{"Rating", formatRating(book.Rating)},
	}
	if book.Link != "" {
		rows = append(rows, [2]string{"Link", truncateMiddle(book.Link, width-10)})
	}
	if book.CoverRef != "" {
		rows = append(rows, [2]string{"Cover", truncateMiddle(book.CoverRef, width-10)})
	}
	for _, r := range rows {
		b.WriteString(label.Render(r[0]))
		b.WriteString(styles.Text.Render(r[1]))
		b.WriteString("\n")
	}

	if book.Description != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(wrap(book.Description, width)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetail renders the detail view.
func (m Model) renderDetail() string {
	title := fmt.Sprintf("Book #%d", m.detailID)
	if book, ok := m.detailBook(); ok {
		title = book.Title
	}
	return m.renderBox(title, m.detailViewport.View(), m.width, m.contentHeight(), true)
}
