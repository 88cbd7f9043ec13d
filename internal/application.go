package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
)

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController(logger, entity.NewGame())

	log.Info("Starting game")
	if err := runProgram(ctx, tui.New(logger, gameController), programOptions(conf)...); err != nil {
		return err
	}

	log.Info("Game closed")

	return nil
}

func programOptions(conf *config.Config) []tea.ProgramOption {
	options := []tea.ProgramOption{}
	if !conf.Inline {
		options = append(options, tea.WithAltScreen())
	}

	return options
}

func runProgram(ctx context.Context, model tea.Model, options ...tea.ProgramOption) error {
	options = append(options, tea.WithContext(ctx))

	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		// a cancelled context is a regular shutdown
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("tui program failed: %w", err)
	}

	return nil
}
