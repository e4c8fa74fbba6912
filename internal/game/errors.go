package game

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectn/internal/apperror"
)

var (
	ErrNonPositiveRows       = errors.New("rows must be positive")
	ErrNonPositiveColumns    = errors.New("columns must be positive")
	ErrNonPositiveWinLength  = errors.New("win length must be positive")
	ErrWinLengthExceedsBoard = errors.New("win length cannot exceed min(rows, columns)")

	ErrUnknownCell   = errors.New("unknown cell symbol")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownStatus = errors.New("unknown game status")
)

// ConfigError reports rejected construction parameters. It matches both
// apperror.ErrInvalidConfiguration and its Reason with errors.Is.
type ConfigError struct {
	Reason    error
	Rows      int
	Columns   int
	WinLength int
}

func (that *ConfigError) Error() string {
	switch that.Reason {
	case ErrNonPositiveRows:
		return fmt.Sprintf("%s, got: %d", that.Reason, that.Rows)
	case ErrNonPositiveColumns:
		return fmt.Sprintf("%s, got: %d", that.Reason, that.Columns)
	case ErrNonPositiveWinLength:
		return fmt.Sprintf("%s, got: %d", that.Reason, that.WinLength)
	case ErrWinLengthExceedsBoard:
		return fmt.Sprintf("win length (%d) cannot exceed min(rows, columns) = %d",
			that.WinLength, min(that.Rows, that.Columns))
	default:
		return fmt.Sprintf("%s: %v", apperror.ErrInvalidConfiguration, that.Reason)
	}
}

func (that *ConfigError) Unwrap() []error {
	return []error{apperror.ErrInvalidConfiguration, that.Reason}
}

// OutOfBoundsError is returned by MakeMove for coordinates outside the grid.
type OutOfBoundsError struct {
	Row     int
	Col     int
	Rows    int
	Columns int
}

func (that *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) is out of bounds for board size %dx%d",
		that.Row, that.Col, that.Rows, that.Columns)
}

func (that *OutOfBoundsError) Unwrap() error {
	return apperror.ErrOutOfBounds
}

// CellOccupiedError is returned by MakeMove for a cell that already holds a token.
type CellOccupiedError struct {
	Row int
	Col int
}

func (that *CellOccupiedError) Error() string {
	return fmt.Sprintf("position (%d, %d) is already occupied", that.Row, that.Col)
}

func (that *CellOccupiedError) Unwrap() error {
	return apperror.ErrCellOccupied
}
