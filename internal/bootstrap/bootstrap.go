package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	browseinadapter "patterns/internal/modules/browse/adapter/in"
	browseoutadapter "patterns/internal/modules/browse/adapter/out"
	browseservice "patterns/internal/modules/browse/service"
	browseusecase "patterns/internal/modules/browse/usecase"
	cataloginadapter "patterns/internal/modules/catalog/adapter/in"
	catalogoutadapter "patterns/internal/modules/catalog/adapter/out"
	catalogservice "patterns/internal/modules/catalog/service"
	catalogusecase "patterns/internal/modules/catalog/usecase"
	preferenceinadapter "patterns/internal/modules/preference/adapter/in"
	preferenceservice "patterns/internal/modules/preference/service"
	preferenceusecase "patterns/internal/modules/preference/usecase"
	progressinadapter "patterns/internal/modules/progress/adapter/in"
	progressservice "patterns/internal/modules/progress/service"
	progressusecase "patterns/internal/modules/progress/usecase"
	"patterns/internal/platform/clock"
	"patterns/internal/platform/config"
	"patterns/internal/platform/kv"
	uiapp "patterns/internal/ui/app"
)

type App struct {
	CatalogCLI    cataloginadapter.CLIHandler
	ProgressCLI   progressinadapter.CLIHandler
	PreferenceCLI preferenceinadapter.CLIHandler
	BrowseCLI     browseinadapter.CLIHandler

	closer func() error
}

// New wires the modules in startup order: the dataset is loaded first, then
// the completion store is hydrated, so nothing can render or mutate against
// an unhydrated store.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, closer, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	fail := func(err error) (*App, error) {
		_ = closer()
		return nil, err
	}

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewFixtureDatasetSource(cfg.DatasetPath),
		logger.Named("catalog"),
	))
	dataset, err := catalogUC.Dataset(ctx)
	if err != nil {
		return fail(err)
	}

	progressUC := progressusecase.NewInteractor(progressservice.NewProgressService(
		clock.SystemClock{},
		store,
		logger.Named("progress"),
	))
	progressCLI := progressinadapter.NewCLIHandler(progressUC)
	var known []int
	if cfg.PruneStaleIDs {
		known = make([]int, 0, len(dataset.Problems))
		for _, p := range dataset.Problems {
			known = append(known, p.ID)
		}
	}
	report, err := progressCLI.Hydrate(ctx, known)
	if err != nil {
		return fail(fmt.Errorf("hydrate progress: %w", err))
	}
	logger.Debug("startup complete",
		zap.String("backend", cfg.Backend),
		zap.Int("problems", len(dataset.Problems)),
		zap.Int("completed", report.Count),
		zap.String("shape", report.Shape),
	)

	preferenceUC := preferenceusecase.NewInteractor(preferenceservice.NewPreferenceService(store, logger.Named("preference")))
	browseUC := browseusecase.NewInteractor(browseservice.NewBrowseService(
		browseoutadapter.NewCatalogSourceAdapter(catalogUC),
		browseoutadapter.NewProgressMarkAdapter(progressUC),
		logger.Named("browse"),
	))

	return &App{
		CatalogCLI:    cataloginadapter.NewCLIHandler(catalogUC),
		ProgressCLI:   progressCLI,
		PreferenceCLI: preferenceinadapter.NewCLIHandler(preferenceUC),
		BrowseCLI:     browseinadapter.NewCLIHandler(browseUC),
		closer:        closer,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer()
}

func openStore(cfg config.Config) (kv.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := kv.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, store.Close, nil
	case config.BackendFile:
		return kv.NewFileStore(cfg.StateDir), noop, nil
	case config.BackendMemory:
		return kv.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
}

func RunTUI(ctx context.Context, app *App) error {
	theme, err := app.PreferenceCLI.Theme(ctx)
	if err != nil {
		return err
	}
	model := uiapp.NewModel(app.BrowseCLI, app.ProgressCLI, app.PreferenceCLI, theme.Dark)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
