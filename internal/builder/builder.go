// Package builder assembles construction parameters for game.New.
// It performs no validation of its own; Build delegates to the engine.
package builder

import "github.com/rocketscienceinc/connectn/internal/game"

const (
	DefaultRows      = 3
	DefaultColumns   = 3
	DefaultWinLength = 3
)

type Builder struct {
	rows      int
	columns   int
	winLength int
}

// New returns a builder preset to a 3x3 board with win length 3.
func New() *Builder {
	return &Builder{
		rows:      DefaultRows,
		columns:   DefaultColumns,
		winLength: DefaultWinLength,
	}
}

func (that *Builder) Rows(rows int) *Builder {
	that.rows = rows
	return that
}

func (that *Builder) Columns(columns int) *Builder {
	that.columns = columns
	return that
}

func (that *Builder) WinLength(winLength int) *Builder {
	that.winLength = winLength
	return that
}

func (that *Builder) BoardSize(rows, columns int) *Builder {
	that.rows = rows
	that.columns = columns
	return that
}

func (that *Builder) SquareBoard(size int) *Builder {
	return that.BoardSize(size, size)
}

// Params returns the values collected so far.
func (that *Builder) Params() (rows, columns, winLength int) {
	return that.rows, that.columns, that.winLength
}

func (that *Builder) Build() (*game.Game, error) {
	return game.New(that.rows, that.columns, that.winLength)
}
