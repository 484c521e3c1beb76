package ui

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/logtail"
	"github.com/five82/folio/internal/state"
)

// Log refresh constants
const (
	logRefreshInterval = 2 * time.Second
	logTailLimit       = 500
)

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// opDoneMsg reports a finished session call. Its state change arrives as a
// snapshot; err is kept for logging.
type opDoneMsg struct {
	op  string
	id  int
	err error
}

type logLinesMsg struct {
	lines []logtail.Line
	err   error
}

type prefsSavedMsg struct {
	err error
}

// Commands
//
// Session calls always run inside commands. The session notifies its
// subscribers synchronously and the program's subscriber blocks until Update
// receives the message, so calling the session from Update would deadlock.

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func snapshotCmd(s Controller) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(s.Snapshot())
	}
}

func loadAllCmd(ctx context.Context, s Controller) tea.Cmd {
	return func() tea.Msg {
		err := s.LoadAll(ctx)
		return opDoneMsg{op: "load all", err: err}
	}
}

func loadBookCmd(ctx context.Context, s Controller, id int) tea.Cmd {
	return func() tea.Msg {
		err := s.LoadByID(ctx, id)
		return opDoneMsg{op: "load book", id: id, err: err}
	}
}

func toggleFavoriteCmd(ctx context.Context, s Controller, id int) tea.Cmd {
	return func() tea.Msg {
		err := s.ToggleFavorite(ctx, id)
		return opDoneMsg{op: "toggle favorite", id: id, err: err}
	}
}

func clearErrorCmd(s Controller) tea.Cmd {
	return func() tea.Msg {
		s.ClearError()
		return snapshotMsg(s.Snapshot())
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLimit)
		return logLinesMsg{lines: lines, err: err}
	}
}

// setters applies view-state changes (query, category and the like) in the
// order the user made them. Commands run on their own goroutines, so two
// quick keystrokes could otherwise reach the session out of order; a setter
// that arrives after a newer one for the same field is dropped.
type setters struct {
	issued  atomic.Uint64
	mu      sync.Mutex
	applied map[string]uint64
}

func newSetters() *setters {
	return &setters{applied: make(map[string]uint64)}
}

// cmd returns a command that runs fn unless a newer setter for field has
// already run.
func (o *setters) cmd(s Controller, field string, fn func()) tea.Cmd {
	seq := o.issued.Add(1)
	return func() tea.Msg {
		o.mu.Lock()
		if seq <= o.applied[field] {
			o.mu.Unlock()
			return nil
		}
		o.applied[field] = seq
		fn()
		o.mu.Unlock()
		return snapshotMsg(s.Snapshot())
	}
}
