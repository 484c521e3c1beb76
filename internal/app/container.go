package app

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/five82/folio/internal/catalog"
	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/logger"
	"github.com/five82/folio/internal/state"
)

// newContainer registers the providers for one run. Nothing is built until
// it is first invoked.
func newContainer(opts Options) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, opts)
	do.Provide(injector, provideConfig)
	do.Provide(injector, provideLogger)
	do.Provide(injector, provideCatalog)
	do.Provide(injector, provideSession)

	return injector
}

func provideConfig(i do.Injector) (*config.Config, error) {
	opts := do.MustInvoke[Options](i)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.RefreshEvery > 0 {
		cfg.RefreshInterval = opts.RefreshEvery
	}
	return &cfg, nil
}

func provideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log, err := logger.Open(cfg.LogPath, logger.Config{
		Format: cfg.LogFormat,
		Level:  logger.ParseLevel(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func provideCatalog(i do.Injector) (catalog.Source, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	opts := cfg.StoreOptions()
	opts.Logger = log.With("component", "catalog")

	store, err := catalog.NewMemoryStore(catalog.Seed(), opts)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	log.Info("catalog ready", "books", store.Len())
	return store, nil
}

func provideSession(i do.Injector) (*state.Session, error) {
	source := do.MustInvoke[catalog.Source](i)
	log := do.MustInvoke[*logger.Logger](i)
	return state.New(source, log.Logger), nil
}
