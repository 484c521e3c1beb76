package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chrome is the number of lines taken by the header, status bar and footer.
const chrome = 3

// contentHeight is the height available to the active view.
func (m Model) contentHeight() int {
	return max(3, m.height-chrome)
}

// pageSize is the number of list rows one page moves.
func (m Model) pageSize() int {
	return max(1, m.contentHeight()-4)
}

// renderMain renders header, active view, status bar and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.view {
	case ViewWelcome:
		return m.renderWelcome()
	case ViewList:
		return m.renderList()
	case ViewDetail:
		return m.renderDetail()
	case ViewFavorites:
		return m.renderFavorites()
	case ViewLogs:
		return m.renderLogs()
	default:
		return ""
	}
}

// renderHeader renders the top bar: logo, view name and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	parts := []string{
		styles.Logo.Render("folio"),
		styles.AccentText.Render(m.viewName()),
	}
	if snap.Loaded {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%s · %s",
			plural(len(snap.Books), "book", "books"),
			plural(len(snap.Favorites), "favorite", "favorites"))))
	}
	if snap.IsOffline() {
		parts = append(parts, styles.DangerText.Render("OFFLINE"))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) viewName() string {
	switch m.view {
	case ViewWelcome:
		return "Welcome"
	case ViewList:
		return "Catalog"
	case ViewDetail:
		return "Book"
	case ViewFavorites:
		return "Favorites"
	case ViewLogs:
		return "Logs"
	}
	return ""
}

// renderStatus shows loading, errors and the last refresh time.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var parts []string
	switch {
	case snap.Loading:
		parts = append(parts, m.spinner.View()+styles.InfoText.Render(" Loading catalog..."))
	case !snap.LastUpdated.IsZero():
		parts = append(parts, styles.FaintText.Render("updated "+snap.LastUpdated.Format("15:04:05")))
	}
	if snap.Err != nil {
		msg := truncate(snap.Err.Error(), max(10, m.width/2))
		parts = append(parts, styles.DangerText.Render("✗ "+msg)+styles.FaintText.Render("  (x to dismiss)"))
	}
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(strings.Join(parts, "   "))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderBox draws content in a rounded border with title on the top edge.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	innerWidth := max(1, width-2)
	innerHeight := max(1, height-2)

	body := lipgloss.NewStyle().
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(innerHeight).
		Render(content)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderTop(false).
		Render(body)

	return m.boxTop(title, width, borderColor) + "\n" + box
}

// boxTop renders the top border with an inline title.
func (m Model) boxTop(title string, width int, color string) string {
	border := lipgloss.RoundedBorder()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	label := ""
	if title != "" {
		label = " " + truncate(title, max(1, width-6)) + " "
	}
	fill := max(0, width-2-lipgloss.Width(label)-1)
	return style.Render(border.TopLeft+border.Top) +
		m.theme.Styles().Title.Render(label) +
		style.Render(strings.Repeat(border.Top, fill)+border.TopRight)
}
