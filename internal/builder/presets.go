package builder

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/game"
)

const (
	TicTacToeName   = "tic-tac-toe"
	ConnectFourName = "connect-four"
	GomokuName      = "gomoku"
	SmallName       = "small"
	LargeName       = "large"
)

// Preset is a named board configuration.
type Preset struct {
	Name      string `json:"name" yaml:"name"`
	Title     string `json:"title" yaml:"title"`
	Rows      int    `json:"rows" yaml:"rows"`
	Columns   int    `json:"columns" yaml:"columns"`
	WinLength int    `json:"win_length" yaml:"win-length"`
}

func (that Preset) Builder() *Builder {
	return New().BoardSize(that.Rows, that.Columns).WinLength(that.WinLength)
}

func (that Preset) Build() (*game.Game, error) {
	return that.Builder().Build()
}

// Builtin returns the standard presets.
func Builtin() []Preset {
	return []Preset{
		{Name: TicTacToeName, Title: "Tic-Tac-Toe", Rows: 3, Columns: 3, WinLength: 3},
		{Name: ConnectFourName, Title: "Connect Four", Rows: 6, Columns: 7, WinLength: 4},
		{Name: GomokuName, Title: "Gomoku", Rows: 15, Columns: 15, WinLength: 5},
		{Name: SmallName, Title: "Small practice board", Rows: 5, Columns: 5, WinLength: 4},
		{Name: LargeName, Title: "Large board", Rows: 10, Columns: 10, WinLength: 5},
	}
}

func TicTacToe() (*game.Game, error) {
	return New().Rows(3).Columns(3).WinLength(3).Build()
}

func ConnectFour() (*game.Game, error) {
	return New().Rows(6).Columns(7).WinLength(4).Build()
}

func Gomoku() (*game.Game, error) {
	return New().Rows(15).Columns(15).WinLength(5).Build()
}

func SmallGame() (*game.Game, error) {
	return New().Rows(5).Columns(5).WinLength(4).Build()
}

func LargeGame() (*game.Game, error) {
	return New().Rows(10).Columns(10).WinLength(5).Build()
}

func CustomSquare(size, winLength int) (*game.Game, error) {
	return New().SquareBoard(size).WinLength(winLength).Build()
}

// Catalog is a set of presets addressable by name. Safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewCatalog returns a catalog with the built-in presets followed by extra.
func NewCatalog(extra ...Preset) (*Catalog, error) {
	catalog := &Catalog{
		presets: make(map[string]Preset),
	}

	for _, preset := range append(Builtin(), extra...) {
		if err := catalog.Register(preset); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// Register adds a preset after checking its parameters with the engine.
func (that *Catalog) Register(preset Preset) error {
	if preset.Name == "" {
		return fmt.Errorf("%w: preset name is empty", apperror.ErrInvalidConfiguration)
	}

	if err := game.Validate(preset.Rows, preset.Columns, preset.WinLength); err != nil {
		return fmt.Errorf("preset %q: %w", preset.Name, err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.presets[preset.Name]; exists {
		return fmt.Errorf("preset %q: %w", preset.Name, apperror.ErrPresetExists)
	}

	if preset.Title == "" {
		preset.Title = preset.Name
	}

	that.presets[preset.Name] = preset

	return nil
}

func (that *Catalog) Lookup(name string) (Preset, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	preset, ok := that.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", apperror.ErrUnknownPreset, name)
	}

	return preset, nil
}

// List returns all presets sorted by name.
func (that *Catalog) List() []Preset {
	that.mu.RLock()
	defer that.mu.RUnlock()

	presets := make([]Preset, 0, len(that.presets))
	for _, preset := range that.presets {
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return presets
}
