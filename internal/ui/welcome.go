package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `  __       _ _
 / _| ___ | (_) ___
| |_ / _ \| | |/ _ \
|  _| (_) | | | (_) |
|_|  \___/|_|_|\___/ `

// renderWelcome renders the landing screen.
func (m Model) renderWelcome() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Logo.Render(logo))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("A small catalog of books worth reading."))
	b.WriteString("\n\n")

	switch {
	case m.snapshot.Loading:
		b.WriteString(m.spinner.View() + styles.MutedText.Render(" Fetching the catalog..."))
	case m.snapshot.Loaded:
		b.WriteString(styles.SuccessText.Render(plural(len(m.snapshot.Books), "book", "books") + " ready"))
	case m.snapshot.Err != nil:
		b.WriteString(styles.DangerText.Render("Catalog unavailable. Press r to retry."))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Key.Render("enter") + styles.MutedText.Render(" browse   "))
	b.WriteString(styles.Key.Render("v") + styles.MutedText.Render(" favorites   "))
	b.WriteString(styles.Key.Render("?") + styles.MutedText.Render(" help"))

	return lipgloss.Place(
		m.width,
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()),
	)
}
