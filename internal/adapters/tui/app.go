package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/services"
)

// App runs the Bubbletea program for one controller.
type App struct {
	ctrl    *services.Controller
	views   *ViewBuilder
	events  <-chan domain.TimerEvent
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
}

// NewApp creates the TUI over ctrl. views must be the renderer ctrl was
// built with. Timer events are read from events.
func NewApp(ctrl *services.Controller, views *ViewBuilder, events <-chan domain.TimerEvent, opts ...tea.ProgramOption) *App {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &App{
		ctrl:    ctrl,
		views:   views,
		events:  events,
		options: opts,
	}
}

// Run starts the interface and blocks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, a.ctrl, a.views, a.events)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, a.options...)...)

	a.mu.Lock()
	a.program = program
	a.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()
	cancel()
	wg.Wait()

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop asks a running program to quit.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.program != nil {
		a.program.Quit()
	}
}
