package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/connectn/internal/builder"
	"github.com/rocketscienceinc/connectn/internal/config"
	"github.com/rocketscienceinc/connectn/internal/game"
	"github.com/rocketscienceinc/connectn/internal/repository"
	"github.com/rocketscienceinc/connectn/internal/scenario"
	"github.com/rocketscienceinc/connectn/internal/usecase"
)

var ErrScenarioFailed = errors.New("scenario expectations not met")

// App wires the preset catalog, the match registry and the game manager.
type App struct {
	logger        *slog.Logger
	catalog       *builder.Catalog
	manager       *usecase.GameManager
	defaultPreset string
}

func New(logger *slog.Logger, conf *config.Config) (*App, error) {
	catalog, err := conf.Catalog()
	if err != nil {
		return nil, fmt.Errorf("could not build preset catalog: %w", err)
	}

	matchRepo := repository.NewMatchRepository()

	return &App{
		logger:        logger,
		catalog:       catalog,
		manager:       usecase.NewGameManager(logger, catalog, matchRepo),
		defaultPreset: conf.DefaultPreset,
	}, nil
}

func (that *App) Presets() []builder.Preset {
	return that.catalog.List()
}

// Result is the outcome of playing one scenario.
type Result struct {
	Name string
	// View is nil when the match could not be created.
	View *usecase.MatchView
	// Err is the first error that stopped play.
	Err error
	// Mismatches lists the expectations that did not hold.
	Mismatches []string
}

func (that Result) Passed() bool {
	return len(that.Mismatches) == 0
}

// Play creates a match for the scenario board, applies its moves in order and ends the match.
// Play stops at the first rejected move. A scenario with neither a preset nor dimensions uses the default preset.
func (that *App) Play(ctx context.Context, sc scenario.Scenario) Result {
	log := that.logger.With("method", "Play", "scenario", sc.Name)

	result := Result{Name: sc.Name}

	view, err := that.newMatch(ctx, sc)
	if err != nil {
		result.Err = err
		return result
	}
	result.View = view

	for i, move := range sc.Moves {
		view, err = that.manager.MakeMove(ctx, view.ID, move.Row, move.Col)
		if view != nil {
			result.View = view
		}

		if err != nil {
			log.Debug("play stopped", "move_index", i, "move", move.String(), "error", err)
			result.Err = fmt.Errorf("move %d %s: %w", i+1, move, err)

			break
		}
	}

	if _, err = that.manager.EndMatch(ctx, result.View.ID); err != nil {
		log.Error("failed to end match", "error", err)
	}

	return result
}

// Replay plays every scenario and checks it against its expectations.
func (that *App) Replay(ctx context.Context, scenarios []scenario.Scenario) []Result {
	log := that.logger.With("method", "Replay")

	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		if ctx.Err() != nil {
			break
		}

		result := that.Play(ctx, sc)
		result.Mismatches = check(sc.Expect, result)

		if result.Passed() {
			log.Info("scenario passed", "scenario", sc.Name, "status", statusOf(result))
		} else {
			log.Error("scenario failed", "scenario", sc.Name, "mismatches", result.Mismatches)
		}

		results = append(results, result)
	}

	return results
}

func (that *App) newMatch(ctx context.Context, sc scenario.Scenario) (*usecase.MatchView, error) {
	switch {
	case sc.Custom():
		return that.manager.NewCustomMatch(ctx, sc.Rows, sc.Columns, sc.WinLength)
	case sc.Preset == "":
		return that.manager.NewMatch(ctx, that.defaultPreset)
	default:
		return that.manager.NewMatch(ctx, sc.Preset)
	}
}

func check(expect scenario.Expect, result Result) []string {
	var mismatches []string

	if sentinel, ok := expect.Sentinel(); ok {
		if !errors.Is(result.Err, sentinel) {
			mismatches = append(mismatches, fmt.Sprintf("expected error %s, got: %v", expect.Error, result.Err))
		}
	} else if result.Err != nil {
		mismatches = append(mismatches, fmt.Sprintf("unexpected error: %v", result.Err))
	}

	if expect.Status != nil {
		if result.View == nil {
			mismatches = append(mismatches, fmt.Sprintf("expected status %s, but no match was created", *expect.Status))
		} else if got := result.View.Snapshot.Status; got != *expect.Status {
			mismatches = append(mismatches, fmt.Sprintf("expected status %s, got: %s", *expect.Status, got))
		}
	}

	if expect.Winner != nil {
		var got *game.Player
		if result.View != nil {
			got = result.View.Snapshot.Winner
		}

		if got == nil || *got != *expect.Winner {
			mismatches = append(mismatches, fmt.Sprintf("expected winner %s, got: %s", *expect.Winner, playerName(got)))
		}
	}

	return mismatches
}

func statusOf(result Result) string {
	if result.View == nil {
		return "none"
	}

	return result.View.Snapshot.Status.String()
}

func playerName(player *game.Player) string {
	if player == nil {
		return "none"
	}

	return player.String()
}

// RunReplay - loads scenarios from paths and replays them until done or interrupted.
func RunReplay(logger *slog.Logger, conf *config.Config, paths ...string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
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

	app, err := New(logger, conf)
	if err != nil {
		return err
	}

	scenarios, err := scenario.LoadPaths(paths...)
	if err != nil {
		return fmt.Errorf("could not load scenarios: %w", err)
	}

	results := app.Replay(ctx, scenarios)

	var failed []string
	for _, result := range results {
		if !result.Passed() {
			failed = append(failed, result.Name)
		}
	}

	log.Info("Replay finished", "total", len(scenarios), "run", len(results), "failed", len(failed))

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrScenarioFailed, strings.Join(failed, ", "))
	}

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("replay interrupted: %w", err)
	}

	return nil
}
