// package app is the main entrypoint into the application, responsible for
// configuring and starting the application, services, dependency injection,
// etc.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/icons"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/session"
	"github.com/leg100/tabbed/internal/settings"
	"github.com/leg100/tabbed/internal/taborder"
	"github.com/leg100/tabbed/internal/tui/top"
	"github.com/leg100/tabbed/internal/version"
)

type app struct {
	logger  *logging.Logger
	watcher *editor.Watcher
	store   *settings.SQLite
	logFile *os.File
}

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "tabbed", version.Version)
		return nil
	}
	if cfg.DumpRecord != "" {
		return dumpRecord(stdout, cfg)
	}

	app, m, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		m,
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// tabs are clicked, dragged and scrolled with the mouse
		tea.WithMouseCellMotion(),
	)
	cleanup := app.start(ctx, p)
	defer func() {
		if err := cleanup(); err != nil {
			fmt.Fprintln(stderr, "cleaning up:", err.Error())
		}
	}()

	// Blocks until user quits
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// newApp constructs the services and the top-level model, loading the
// startup session and opening any files given on the command line.
func newApp(ctx context.Context, cfg config) (*app, tea.Model, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Setup logging
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "tabbed.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	cfg.loggingOptions.AdditionalWriters = append(cfg.loggingOptions.AdditionalWriters, logFile)
	logger := logging.NewLogger(cfg.loggingOptions)

	store, err := settings.OpenSQLite(filepath.Join(cfg.DataDir, "settings.db"))
	if err != nil {
		logFile.Close()
		return nil, nil, fmt.Errorf("opening settings: %w", err)
	}
	watcher, err := editor.NewWatcher(logger)
	if err != nil {
		store.Close()
		logFile.Close()
		return nil, nil, fmt.Errorf("starting file watcher: %w", err)
	}
	app := &app{
		logger:  logger,
		watcher: watcher,
		store:   store,
		logFile: logFile,
	}

	// Instantiate services
	editors := editor.NewService(editor.ServiceOptions{
		Logger:  logger,
		Watcher: watcher,
	})
	sessions, err := session.NewService(session.ServiceOptions{
		Dir:     filepath.Join(cfg.DataDir, "sessions"),
		Editors: editors,
		Logger:  logger,
	})
	if err != nil {
		_ = app.close()
		return nil, nil, err
	}

	// Construct TUI programme.
	m, err := top.New(top.Options{
		Editors:     editors,
		Sessions:    sessions,
		Engine:      taborder.NewEngine(store, logger),
		Icons:       icons.NewProvider(),
		Logger:      logger,
		Logs:        logger,
		FileManager: cfg.FileManager,
		OpenWith:    cfg.OpenWith,
		Debug:       cfg.Debug,
	})
	if err != nil {
		_ = app.close()
		return nil, nil, err
	}

	// The model is connected to the services before the session is loaded so
	// that it receives the session's tabs in their saved order.
	if err := sessions.Load(cfg.Session); err != nil {
		_ = app.close()
		return nil, nil, fmt.Errorf("loading session: %w", err)
	}
	for _, path := range cfg.Files {
		if _, err := editors.Open(path); err != nil {
			logger.Error("opening file", "path", path, "error", err)
		}
	}
	return app, m, nil
}

type sender interface {
	Send(tea.Msg)
}

// start relays events from background producers to the TUI, returning a
// function that releases the app's resources.
func (a *app) start(ctx context.Context, s sender) func() error {
	a.watcher.Start(ctx)

	logEvents := a.logger.Subscribe(ctx)
	go func() {
		for ev := range logEvents {
			s.Send(ev)
		}
	}()
	fileEvents := a.watcher.Subscribe(ctx)
	go func() {
		for ev := range fileEvents {
			s.Send(ev)
		}
	}()

	return a.close
}

func (a *app) close() error {
	return errors.Join(
		a.watcher.Close(),
		a.store.Close(),
		a.logFile.Close(),
	)
}
