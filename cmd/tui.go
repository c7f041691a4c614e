package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/xvierd/zenith/internal/adapters/tui"
	"github.com/xvierd/zenith/internal/xslog"
)

// ErrNotTerminal is returned when the interface is started without a TTY.
var ErrNotTerminal = errors.New("zenith needs an interactive terminal; try \"zenith sleep\" for scripted use")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

// runTUI opens the full screen interface.
func runTUI(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return ErrNotTerminal
	}

	ctx := xslog.WithLogger(setupSignalHandler(), app.logger)
	s := newSession(time.Now())
	defer s.meditation.Stop()

	app.logger.Info("zenith started", slog.String("version", Version))
	if err := tui.NewApp(s.ctrl, s.views, s.events).Run(ctx); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	app.logger.Info("zenith stopped")
	return nil
}
