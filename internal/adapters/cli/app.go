package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/andrescamacho/spaceempire-go/internal/adapters/metrics"
	"github.com/andrescamacho/spaceempire-go/internal/adapters/persistence"
	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/application/logging"
	"github.com/andrescamacho/spaceempire-go/internal/application/mediator"
	"github.com/andrescamacho/spaceempire-go/internal/domain/player"
	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/config"
	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/database"
	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/logger"
)

// gameApp is a fully wired session: logger, mediator, observers and
// the optional metrics endpoint and step history database
type gameApp struct {
	cfg      *config.Config
	session  *game.SpaceEmpire
	mediator mediator.Mediator
	logger   *slog.Logger
	db       *gorm.DB

	metricsCancel context.CancelFunc
	metricsDone   chan error
}

// newGameApp builds the session described by cfg. logOut overrides the
// configured log destination when non-nil.
func newGameApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (*gameApp, error) {
	var log *slog.Logger
	if logOut != nil {
		log = logger.NewWithWriter(cfg.Logging, logOut)
	} else {
		log = logger.Init(cfg.Logging)
	}

	policy, err := player.ParseGatheringPolicy(cfg.Game.GatheringPolicy)
	if err != nil {
		return nil, err
	}

	session, err := game.NewSpaceEmpire(
		game.WithPlayers(cfg.Game.Players),
		game.WithGatheringPolicy(policy),
		game.WithObservers(game.NewLogObserver()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	app := &gameApp{
		cfg:      cfg,
		session:  session,
		mediator: mediator.NewMediator(),
		logger:   log,
	}
	app.mediator.RegisterMiddleware(game.LoggingMiddleware)

	if cfg.Metrics.Enabled {
		if err := app.startMetrics(ctx); err != nil {
			app.Close()
			return nil, err
		}
	}

	if cfg.Database.Enabled {
		db, err := database.Open(&cfg.Database)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to open step history: %w", err)
		}
		app.db = db
		session.AddObserver(persistence.NewGormStepHistoryRepository(db))
	}

	if err := game.RegisterHandlers(app.mediator, session); err != nil {
		app.Close()
		return nil, err
	}

	if cfg.Game.Homeworlds {
		if _, err := app.Send(ctx, &game.SetHomeworldsCommand{}); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to assign homeworlds: %w", err)
		}
	}

	log.Info("Session started",
		"session_id", session.SessionID(),
		"players", cfg.Game.Players,
		"gathering_policy", policy.String(),
		"history", cfg.Database.Enabled,
		"metrics", cfg.Metrics.Enabled,
	)
	return app, nil
}

func (a *gameApp) startMetrics(ctx context.Context) error {
	metrics.InitRegistry()

	requests := metrics.NewRequestMetricsCollector()
	if err := requests.Register(); err != nil {
		return fmt.Errorf("failed to register request metrics: %w", err)
	}
	a.mediator.RegisterMiddleware(metrics.PrometheusMiddleware(requests))

	collector := metrics.NewGameMetricsCollector(a.session.Starmap())
	if err := collector.Register(); err != nil {
		return fmt.Errorf("failed to register game metrics: %w", err)
	}
	metrics.SetGlobalGameCollector(collector)
	a.session.AddObserver(collector)

	server, err := metrics.NewServer(a.cfg.Metrics.Addr(), a.cfg.Metrics.Path)
	if err != nil {
		return err
	}

	serverCtx, cancel := context.WithCancel(ctx)
	a.metricsCancel = cancel
	a.metricsDone = make(chan error, 1)
	go func() {
		a.metricsDone <- server.Serve(serverCtx)
	}()

	a.logger.Info("Metrics endpoint listening", "addr", server.Addr(), "path", a.cfg.Metrics.Path)
	return nil
}

// Send dispatches a request with the app logger in context
func (a *gameApp) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	ctx = logging.WithLogger(ctx, logging.NewSlogLogger(a.logger))
	return a.mediator.Send(ctx, request)
}

// Step runs one step through the mediator
func (a *gameApp) Step(ctx context.Context) (*game.StepReport, error) {
	response, err := a.Send(ctx, &game.StepCommand{})
	report, _ := response.(*game.StepReport)
	return report, err
}

// Close stops the metrics endpoint and closes the history database
func (a *gameApp) Close() error {
	var errs []error
	if a.metricsCancel != nil {
		a.metricsCancel()
		errs = append(errs, <-a.metricsDone)
		a.metricsCancel = nil
		metrics.ResetRegistry()
	}
	if a.db != nil {
		errs = append(errs, database.Close(a.db))
		a.db = nil
	}
	return errors.Join(errs...)
}
