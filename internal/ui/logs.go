package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/logtail"
)

// updateLogViewport re-renders the log tail, keeping the view pinned to the
// bottom when it already was.
func (m *Model) updateLogViewport() {
	if m.logViewport.Width == 0 {
		return
	}
	atBottom := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0
	m.logViewport.SetContent(m.logContent(m.logViewport.Width))
	if atBottom {
		m.logViewport.GotoBottom()
	}
}

func (m Model) logContent(width int) string {
	styles := m.theme.Styles()
	switch {
	case m.logPath == "":
		return styles.MutedText.Render("Logging to a file is disabled.")
	case m.logErr != nil:
		return styles.DangerText.Render("Failed to read log: " + m.logErr.Error())
	}

	lines := logtail.AtLeast(m.logLines, m.logMinLevel)
	if len(lines) == 0 {
		return styles.MutedText.Render("No log lines yet.")
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, m.levelStyle(l).Render(truncate(l.Text, width)))
	}
	return strings.Join(out, "\n")
}

// levelStyle colors a line by its level.
func (m Model) levelStyle(l logtail.Line) lipgloss.Style {
	styles := m.theme.Styles()
	if !l.Parsed {
		return styles.FaintText
	}
	switch {
	case l.Level >= slog.LevelError:
		return styles.DangerText
	case l.Level >= slog.LevelWarn:
		return styles.WarningText
	case l.Level >= slog.LevelInfo:
		return styles.Text
	default:
		return styles.MutedText
	}
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	title := fmt.Sprintf("Logs ≥ %s", m.logMinLevel)
	if m.logPath != "" {
		title += " · " + truncateMiddle(m.logPath, max(10, m.width/2))
	}
	return m.renderBox(title, m.logViewport.View(), m.width, m.contentHeight(), true)
}
