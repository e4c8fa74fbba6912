package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/builder"
	"github.com/rocketscienceinc/connectn/internal/entity"
	"github.com/rocketscienceinc/connectn/internal/game"
)

// CustomPreset is recorded on matches created from explicit dimensions.
const CustomPreset = "custom"

type matchRepo interface {
	Create(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Match, error)
}

type presetCatalog interface {
	Lookup(name string) (builder.Preset, error)
}

// MatchView is a point-in-time copy of a match.
type MatchView struct {
	ID       string        `json:"id"`
	Preset   string        `json:"preset"`
	Snapshot game.Snapshot `json:"game"`
}

type GameManager struct {
	logger    *slog.Logger
	catalog   presetCatalog
	matchRepo matchRepo
}

func NewGameManager(logger *slog.Logger, catalog presetCatalog, matchRepo matchRepo) *GameManager {
	return &GameManager{
		logger: logger,

		catalog:   catalog,
		matchRepo: matchRepo,
	}
}

// NewMatch starts a match on the named preset.
func (that *GameManager) NewMatch(ctx context.Context, presetName string) (*MatchView, error) {
	preset, err := that.catalog.Lookup(presetName)
	if err != nil {
		return nil, fmt.Errorf("failed to find preset: %w", err)
	}

	g, err := preset.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}

	return that.createMatch(ctx, preset.Name, g)
}

// NewCustomMatch starts a match with explicit dimensions.
func (that *GameManager) NewCustomMatch(ctx context.Context, rows, columns, winLength int) (*MatchView, error) {
	g, err := builder.New().BoardSize(rows, columns).WinLength(winLength).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}

	return that.createMatch(ctx, CustomPreset, g)
}

// MakeMove places the current player's token. On a rejected move the view of the unchanged match is returned with the error.
func (that *GameManager) MakeMove(ctx context.Context, id string, row, col int) (*MatchView, error) {
	log := that.logger.With("method", "MakeMove", "match_id", id)

	match, err := that.getMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match.Lock()
	defer match.Unlock()

	player := match.Game.CurrentPlayer()

	status, err := match.Game.MakeMove(row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)

		return viewOf(match), fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move made", "player", player, "row", row, "col", col, "status", status)

	if status.IsTerminal() {
		log.Info("match finished", "status", status, "moves", match.Game.MoveCount())
	}

	return viewOf(match), nil
}

func (that *GameManager) IsValidMove(ctx context.Context, id string, row, col int) (bool, error) {
	match, err := that.getMatchByID(ctx, id)
	if err != nil {
		return false, err
	}

	match.Lock()
	defer match.Unlock()

	return match.Game.IsValidMove(row, col), nil
}

// ResetMatch clears the board and keeps the dimensions.
func (that *GameManager) ResetMatch(ctx context.Context, id string) (*MatchView, error) {
	match, err := that.getMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match.Lock()
	defer match.Unlock()

	match.Game.Reset()

	that.logger.Info("match reset", "method", "ResetMatch", "match_id", id)

	return viewOf(match), nil
}

func (that *GameManager) GetMatch(ctx context.Context, id string) (*MatchView, error) {
	match, err := that.getMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match.Lock()
	defer match.Unlock()

	return viewOf(match), nil
}

// ListMatches returns views of every tracked match, oldest first.
func (that *GameManager) ListMatches(ctx context.Context) ([]*MatchView, error) {
	matches, err := that.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	views := make([]*MatchView, 0, len(matches))
	for _, match := range matches {
		match.Lock()
		views = append(views, viewOf(match))
		match.Unlock()
	}

	return views, nil
}

// EndMatch removes the match and returns its final view.
func (that *GameManager) EndMatch(ctx context.Context, id string) (*MatchView, error) {
	log := that.logger.With("method", "EndMatch", "match_id", id)

	match, err := that.getMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = that.matchRepo.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete match: %w", err)
	}

	match.Lock()
	defer match.Unlock()

	view := viewOf(match)
	log.Info("match ended", "status", view.Snapshot.Status)

	return view, nil
}

func (that *GameManager) createMatch(ctx context.Context, presetName string, g *game.Game) (*MatchView, error) {
	log := that.logger.With("method", "createMatch")

	match := entity.NewMatch(uuid.NewString(), presetName, g)
	if err := that.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("match created",
		"match_id", match.ID,
		"preset", presetName,
		"rows", g.Rows(),
		"columns", g.Columns(),
		"win_length", g.WinLength(),
	)

	return viewOf(match), nil
}

func (that *GameManager) getMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrMatchNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// viewOf must be called with the match locked.
func viewOf(match *entity.Match) *MatchView {
	return &MatchView{
		ID:       match.ID,
		Preset:   match.Preset,
		Snapshot: match.Game.Snapshot(),
	}
}
