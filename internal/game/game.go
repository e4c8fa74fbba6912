package game

import (
	"fmt"

	"github.com/rocketscienceinc/connectn/internal/apperror"
)

// axes are the four line directions; each is scanned both ways from the placed cell.
var axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// Game is a two-player Connect-N board. It is not safe for concurrent use.
type Game struct {
	rows      int
	columns   int
	winLength int

	board  [][]Cell
	placed int

	turn   Player
	status Status
	winner Player
}

// New validates the configuration and returns a game ready for the first move.
func New(rows, columns, winLength int) (*Game, error) {
	if err := Validate(rows, columns, winLength); err != nil {
		return nil, err
	}

	game := &Game{
		rows:      rows,
		columns:   columns,
		winLength: winLength,
		board:     newBoard(rows, columns),
	}
	game.Reset()

	return game, nil
}

// Validate checks construction parameters in a fixed order and reports the first violation.
func Validate(rows, columns, winLength int) error {
	var reason error

	switch {
	case rows <= 0:
		reason = ErrNonPositiveRows
	case columns <= 0:
		reason = ErrNonPositiveColumns
	case winLength <= 0:
		reason = ErrNonPositiveWinLength
	case winLength > min(rows, columns):
		reason = ErrWinLengthExceedsBoard
	default:
		return nil
	}

	return &ConfigError{Reason: reason, Rows: rows, Columns: columns, WinLength: winLength}
}

func newBoard(rows, columns int) [][]Cell {
	cells := make([]Cell, rows*columns)
	board := make([][]Cell, rows)

	for row := range board {
		board[row] = cells[row*columns : (row+1)*columns : (row+1)*columns]
	}

	return board
}

func (that *Game) Rows() int {
	return that.rows
}

func (that *Game) Columns() int {
	return that.columns
}

func (that *Game) WinLength() int {
	return that.winLength
}

func (that *Game) CurrentPlayer() Player {
	return that.turn
}

func (that *Game) Status() Status {
	return that.status
}

// Winner returns the winning player; ok is false unless the game was won.
func (that *Game) Winner() (Player, bool) {
	return that.winner, that.winner != 0
}

func (that *Game) IsGameOver() bool {
	return that.status.IsTerminal()
}

// MoveCount is the number of tokens on the board.
func (that *Game) MoveCount() int {
	return that.placed
}

// Board returns a copy of the grid indexed as [row][col].
func (that *Game) Board() [][]Cell {
	board := newBoard(that.rows, that.columns)
	for row := range that.board {
		copy(board[row], that.board[row])
	}

	return board
}

// Snapshot returns a detached copy of the whole game state.
func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Rows:          that.rows,
		Columns:       that.columns,
		WinLength:     that.winLength,
		Board:         that.Board(),
		CurrentPlayer: that.turn,
		Status:        that.status,
		Moves:         that.placed,
	}

	if winner, ok := that.Winner(); ok {
		snapshot.Winner = &winner
	}

	return snapshot
}

// IsValidMove reports whether MakeMove(row, col) would be accepted.
func (that *Game) IsValidMove(row, col int) bool {
	return that.validateMove(row, col) == nil
}

// MakeMove places the current player's token and returns the resulting status.
// A rejected move leaves the game untouched.
func (that *Game) MakeMove(row, col int) (Status, error) {
	if err := that.validateMove(row, col); err != nil {
		return that.status, err
	}

	mover := that.turn
	that.board[row][col] = mover.Token()
	that.placed++

	switch {
	case that.completesLine(row, col):
		that.status = wonBy[mover]
		that.winner = mover
	case that.placed == that.rows*that.columns:
		that.status = Draw
	default:
		that.turn = mover.Opponent()
	}

	return that.status, nil
}

// Reset clears the board and restores the initial turn and status.
func (that *Game) Reset() {
	for row := range that.board {
		clear(that.board[row])
	}

	that.placed = 0
	that.turn = PlayerOne
	that.status = InProgress
	that.winner = 0
}

// validateMove - game over first, then bounds, then occupancy.
func (that *Game) validateMove(row, col int) error {
	if that.IsGameOver() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, that.status)
	}

	if !that.inBounds(row, col) {
		return &OutOfBoundsError{Row: row, Col: col, Rows: that.rows, Columns: that.columns}
	}

	if that.board[row][col] != Empty {
		return &CellOccupiedError{Row: row, Col: col}
	}

	return nil
}

func (that *Game) inBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.columns
}

// completesLine - checks the four axes through (row, col) for a run of winLength.
func (that *Game) completesLine(row, col int) bool {
	token := that.board[row][col]

	for _, axis := range axes {
		count := 1 +
			that.countRun(row, col, axis[0], axis[1], token) +
			that.countRun(row, col, -axis[0], -axis[1], token)

		if count >= that.winLength {
			return true
		}
	}

	return false
}

// countRun counts matching cells from (row, col) in one direction, excluding the start.
func (that *Game) countRun(row, col, deltaRow, deltaCol int, token Cell) int {
	count := 0

	for r, c := row+deltaRow, col+deltaCol; that.inBounds(r, c) && that.board[r][c] == token; r, c = r+deltaRow, c+deltaCol {
		count++
	}

	return count
}
