package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrGameFinished         = errors.New("game is already finished")
	ErrOutOfBounds          = errors.New("position is out of bounds")
	ErrCellOccupied         = errors.New("cell is already occupied")

	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyExists = errors.New("match already exists")
	ErrUnknownPreset      = errors.New("unknown preset")
	ErrPresetExists       = errors.New("preset already exists")
)
