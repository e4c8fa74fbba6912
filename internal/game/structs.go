package game

import "fmt"

// Player identifies one of the two sides. The zero value is not a player.
type Player uint8

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

var opponents = [...]Player{
	PlayerOne: PlayerTwo,
	PlayerTwo: PlayerOne,
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	return opponents[that]
}

// Token returns the cell value this player places on the board.
func (that Player) Token() Cell {
	return Cell(that)
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "player_one"
	case PlayerTwo:
		return "player_two"
	default:
		return fmt.Sprintf("player(%d)", uint8(that))
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player_one", "X":
		*that = PlayerOne
	case "player_two", "O":
		*that = PlayerTwo
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}

	return nil
}

// Cell is the content of one board position.
//
// The printable symbols are part of the public contract:
// Empty is ' ', X (player one) is 'X', O (player two) is 'O'.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

var cellSymbols = [...]rune{
	Empty: ' ',
	X:     'X',
	O:     'O',
}

func (that Cell) Symbol() rune {
	return cellSymbols[that]
}

func (that Cell) String() string {
	return string(that.Symbol())
}

// Owner reports which player holds the cell, false for an empty cell.
func (that Cell) Owner() (Player, bool) {
	if that == Empty {
		return 0, false
	}

	return Player(that), true
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case " ", "":
		*that = Empty
	case "X":
		*that = X
	case "O":
		*that = O
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCell, text)
	}

	return nil
}

// Status is the game progress. Every value other than InProgress is terminal.
type Status uint8

const (
	InProgress Status = iota
	PlayerOneWon
	PlayerTwoWon
	Draw
)

var statusNames = [...]string{
	InProgress:   "in_progress",
	PlayerOneWon: "player_one_won",
	PlayerTwoWon: "player_two_won",
	Draw:         "draw",
}

var wonBy = [...]Status{
	PlayerOne: PlayerOneWon,
	PlayerTwo: PlayerTwoWon,
}

func (that Status) String() string {
	if int(that) < len(statusNames) {
		return statusNames[that]
	}

	return fmt.Sprintf("status(%d)", uint8(that))
}

func (that Status) IsTerminal() bool {
	return that != InProgress
}

func (that Status) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*that = status

	return nil
}

// ParseStatus converts the text form of a status back to its value.
func ParseStatus(name string) (Status, error) {
	for status, statusName := range statusNames {
		if statusName == name {
			return Status(status), nil
		}
	}

	return InProgress, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// Snapshot is a detached copy of the game state.
type Snapshot struct {
	Rows          int      `json:"rows"`
	Columns       int      `json:"columns"`
	WinLength     int      `json:"win_length"`
	Board         [][]Cell `json:"board"`
	CurrentPlayer Player   `json:"current_player"`
	Status        Status   `json:"status"`
	Winner        *Player  `json:"winner,omitempty"`
	Moves         int      `json:"moves"`
}
