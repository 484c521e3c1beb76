package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/catalog"
)

// moveCursor applies a navigation key to cursor over count rows.
func moveCursor(keys keyMap, msg tea.KeyMsg, cursor, count, page int) int {
	if count == 0 {
		return 0
	}
	switch {
	case key.Matches(msg, keys.Up):
		cursor--
	case key.Matches(msg, keys.Down):
		cursor++
	case key.Matches(msg, keys.Top):
		cursor = 0
	case key.Matches(msg, keys.Bottom):
		cursor = count - 1
	case key.Matches(msg, keys.PageUp):
		cursor -= max(1, page)
	case key.Matches(msg, keys.PageDown):
		cursor += max(1, page)
	}
	return clampCursor(cursor, count)
}

// clampCursor keeps cursor within [0, count).
func clampCursor(cursor, count int) int {
	if count <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

// cycleCategory steps through "all" followed by categories. The empty string
// stands for all categories.
func cycleCategory(categories []string, current string, step int) string {
	options := append([]string{""}, categories...)
	idx := 0
	for i, c := range options {
		if c == current || (c != "" && current != "" && catalog.SameCategory(c, current)) {
			idx = i
			break
		}
	}
	n := len(options)
	idx = ((idx+step)%n + n) % n
	return options[idx]
}

var logLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

// nextLogLevel cycles the minimum level shown in the log view.
func nextLogLevel(current slog.Level) slog.Level {
	for i, l := range logLevels {
		if l == current {
			return logLevels[(i+1)%len(logLevels)]
		}
	}
	return logLevels[0]
}

// visibleWindow returns the first row to draw so that cursor stays within a
// window of height rows.
func visibleWindow(cursor, count, height int) int {
	if height <= 0 || count <= height {
		return 0
	}
	start := cursor - height/2
	return max(0, min(start, count-height))
}
