package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xvierd/zenith/internal/adapters/notification"
	"github.com/xvierd/zenith/internal/adapters/tui"
	"github.com/xvierd/zenith/internal/config"
	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/services"
	"github.com/xvierd/zenith/internal/xslog"
)

// timerEventBuffer lets a countdown run ahead of a busy update loop.
const timerEventBuffer = 16

// appDeps groups the dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	logger   *slog.Logger
	closeLog func() error
	notifier *notification.Notifier
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads the configuration and applies flag overrides.
func initializeServices() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if noNotify {
		cfg.Notifications.Enabled = false
	}

	level, err := xslog.Parse(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger, closeLog, err := xslog.OpenFile(cfg.Log.File, level)
	if err != nil {
		return err
	}

	app = appDeps{
		config:   cfg,
		logger:   logger,
		closeLog: closeLog,
		notifier: notification.New(&cfg.Notifications),
	}
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.closeLog != nil {
		err := app.closeLog()
		app.closeLog = nil
		return err
	}
	return nil
}

// session is one running interface: the controller, its renderer and the
// background timers feeding it.
type session struct {
	ctrl       *services.Controller
	views      *tui.ViewBuilder
	events     chan domain.TimerEvent
	meditation *services.MeditationTimer
}

// newSession wires the controller for the current configuration.
func newSession(now time.Time) *session {
	cfg := app.config
	events := make(chan domain.TimerEvent, timerEventBuffer)
	views := tui.NewViewBuilder(&cfg.Theme)
	meditation := services.NewMeditationTimer(events, cfg.Meditation.TickInterval)
	breathing := services.NewBreathingCoach(events, cfg.Breathing.TickInterval)

	state := domain.NewAppState(cfg.ToContent(now))
	ctrl := services.NewController(state, services.ControllerDeps{
		Renderer:   views,
		Meditation: meditation,
		Breathing:  breathing,
		Notifier:   app.notifier,
		Logger:     app.logger,
	})
	return &session{ctrl: ctrl, views: views, events: events, meditation: meditation}
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
