// Package launcher wires config, logging and the TUI into a running program.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/liarsbid/internal/config"
	"github.com/thenoetrevino/liarsbid/internal/feedback"
	"github.com/thenoetrevino/liarsbid/internal/icons"
	"github.com/thenoetrevino/liarsbid/internal/logging"
	"github.com/thenoetrevino/liarsbid/internal/tui"
)

// Options are the command line settings of the picker.
type Options struct {
	config.Overrides

	// NoMouse disables mouse reporting so the terminal keeps text selection
	NoMouse bool
}

// Launch starts the TUI application
func Launch(opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.ApplyOverrides(opts.Overrides); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logging to file before anything else runs
	closeLog, err := logging.Init(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	model, err := NewModel(ctx, cfg, opts)
	if err != nil {
		return err
	}

	slog.Info("liarsbid starting",
		"orientation", cfg.Layout.Orientation,
		"numerals", cfg.Numerals.Policy,
		"haptics", cfg.Feedback.Haptics,
		"glyphs", cfg.Glyphs,
		"theme", cfg.ColorScheme.Preset,
	)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		slog.Info("liarsbid exiting", "bid", m.BidState.Selection().String())
	}
	return nil
}

// NewModel builds the picker model for cfg.
func NewModel(ctx context.Context, cfg *config.Config, opts Options) (tui.Model, error) {
	haptics, err := feedback.New(feedback.Kind(cfg.Feedback.Haptics), logging.Get())
	if err != nil {
		return tui.Model{}, fmt.Errorf("invalid configuration: %w", err)
	}
	glyphs, err := icons.New(icons.Set(cfg.Glyphs))
	if err != nil {
		return tui.Model{}, fmt.Errorf("invalid configuration: %w", err)
	}

	model := tui.InitialModel(ctx, cfg, haptics, glyphs)
	model.MouseEnabled = !opts.NoMouse
	return model, nil
}
