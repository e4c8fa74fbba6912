// Package scenario loads scripted games from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/game"
)

var (
	ErrNoBoard       = errors.New("scenario needs a preset or rows, columns and win-length")
	ErrBoardConflict = errors.New("scenario gives both a preset and dimensions")
	ErrBadMove       = errors.New("move must be a [row, col] pair")
	ErrUnknownErrKey = errors.New("unknown expected error")
)

// Expected error keys and the sentinels they stand for.
var errorKeys = map[string]error{
	"invalid_configuration": apperror.ErrInvalidConfiguration,
	"game_finished":         apperror.ErrGameFinished,
	"out_of_bounds":         apperror.ErrOutOfBounds,
	"cell_occupied":         apperror.ErrCellOccupied,
}

// Move is a board coordinate, written as [row, col] in YAML.
type Move struct {
	Row int
	Col int
}

func (that *Move) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, ErrBadMove)
	}

	if len(pair) != 2 {
		return fmt.Errorf("line %d: %w, got %d values", node.Line, ErrBadMove, len(pair))
	}

	that.Row, that.Col = pair[0], pair[1]

	return nil
}

func (that Move) MarshalYAML() (any, error) {
	return []int{that.Row, that.Col}, nil
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

type Expect struct {
	Status *game.Status `yaml:"status,omitempty"`
	Winner *game.Player `yaml:"winner,omitempty"`
	Error  string       `yaml:"error,omitempty"`
}

// Sentinel returns the error named by Error; ok is false when none is expected.
func (that Expect) Sentinel() (sentinel error, ok bool) {
	sentinel, ok = errorKeys[that.Error]
	return sentinel, ok
}

// Scenario is a board setup, a move list and the expected outcome.
type Scenario struct {
	Name      string `yaml:"name"`
	Preset    string `yaml:"preset,omitempty"`
	Rows      int    `yaml:"rows,omitempty"`
	Columns   int    `yaml:"columns,omitempty"`
	WinLength int    `yaml:"win-length,omitempty"`
	Moves     []Move `yaml:"moves"`
	Expect    Expect `yaml:"expect"`

	// Sized is set when any dimension was given, zero values included.
	Sized bool   `yaml:"-"`
	Path  string `yaml:"-"`
}

// Custom reports whether the scenario gives explicit dimensions instead of a preset.
func (that Scenario) Custom() bool {
	return that.Sized
}

// dimensionKeys detects which dimension keys are present in the document.
type dimensionKeys struct {
	Rows      *int `yaml:"rows"`
	Columns   *int `yaml:"columns"`
	WinLength *int `yaml:"win-length"`
}

func (that dimensionKeys) present() bool {
	return that.Rows != nil || that.Columns != nil || that.WinLength != nil
}

func Parse(data []byte) (Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	var keys dimensionKeys
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	scenario.Sized = keys.present()

	switch {
	case scenario.Sized && scenario.Preset != "":
		return Scenario{}, ErrBoardConflict
	case !scenario.Sized && scenario.Preset == "":
		return Scenario{}, ErrNoBoard
	}

	if _, ok := scenario.Expect.Sentinel(); scenario.Expect.Error != "" && !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownErrKey, scenario.Expect.Error)
	}

	return scenario, nil
}

// Load reads one scenario file. The file name is used when the scenario has no name.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("could not read scenario: %w", err)
	}

	scenario, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	scenario.Path = path

	return scenario, nil
}

// LoadDir reads every .yml/.yaml file in dir, sorted by file name.
func LoadDir(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read scenario dir: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}

		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	scenarios := make([]Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := Load(path)
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

// LoadPaths loads files and directories in the given order.
func LoadPaths(paths ...string) ([]Scenario, error) {
	var scenarios []Scenario

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("could not stat %s: %w", path, err)
		}

		if info.IsDir() {
			loaded, err := LoadDir(path)
			if err != nil {
				return nil, err
			}

			scenarios = append(scenarios, loaded...)

			continue
		}

		scenario, err := Load(path)
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}
