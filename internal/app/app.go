package app

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/do/v2"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/logger"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
	"github.com/five82/folio/internal/ui"
)

// Options configure the folio application.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses default ~/.config/folio/prefs.toml
	RefreshEvery time.Duration // overrides refresh_interval when positive
}

// Run boots the folio TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	injector := newContainer(opts)

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return err
	}
	log, err := do.Invoke[*logger.Logger](injector)
	if err != nil {
		return err
	}
	defer log.Close()

	session, err := do.Invoke[*state.Session](injector)
	if err != nil {
		return err
	}
	defer session.Reset()

	userPrefs := prefs.Load(opts.PrefsPath)
	log.Info("folio starting",
		"session", session.ID(),
		"theme", userPrefs.Theme,
		"refresh_interval", cfg.RefreshInterval,
	)

	// Must stop before the session reset and log close deferred above.
	stopRefresh := StartRefresher(ctx, session, cfg.RefreshInterval, log.With("component", "refresher"))
	defer stopRefresh()

	uiOpts := ui.Options{
		Context:   ctx,
		Session:   session,
		LogPath:   cfg.LogPath,
		ThemeName: userPrefs.Theme,
		Compact:   userPrefs.Compact,
		PrefsPath: opts.PrefsPath,
		Logger:    log.With("component", "ui"),
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("folio exiting", "session", session.ID())
	return nil
}
