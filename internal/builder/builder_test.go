package builder

import (
	"testing"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// When: building without setting anything
		g, err := New().Build()
		require.NoError(t, err)

		// Then: a 3x3 game with win length 3 is returned
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 3, g.Columns())
		assert.Equal(t, 3, g.WinLength())
	})

	t.Run("Fluent setters", func(t *testing.T) {
		g, err := New().Rows(6).Columns(7).WinLength(4).Build()
		require.NoError(t, err)

		assert.Equal(t, 6, g.Rows())
		assert.Equal(t, 7, g.Columns())
		assert.Equal(t, 4, g.WinLength())
	})

	t.Run("Last setter wins", func(t *testing.T) {
		b := New().Rows(4).BoardSize(8, 9).SquareBoard(5).WinLength(2)

		rows, columns, winLength := b.Params()
		assert.Equal(t, 5, rows)
		assert.Equal(t, 5, columns)
		assert.Equal(t, 2, winLength)
	})

	t.Run("Invalid parameters are rejected by the engine", func(t *testing.T) {
		// When: the win length does not fit the board
		g, err := New().BoardSize(3, 5).WinLength(4).Build()

		// Then: the engine's configuration error is returned unchanged
		assert.Nil(t, g)
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		require.ErrorIs(t, err, game.ErrWinLengthExceedsBoard)
	})

	t.Run("Non-positive rows", func(t *testing.T) {
		_, err := New().Rows(0).Build()

		require.ErrorIs(t, err, game.ErrNonPositiveRows)
	})
}

func TestPresetFactories(t *testing.T) {
	tests := []struct {
		name      string
		build     func() (*game.Game, error)
		rows      int
		columns   int
		winLength int
	}{
		{"TicTacToe", TicTacToe, 3, 3, 3},
		{"ConnectFour", ConnectFour, 6, 7, 4},
		{"Gomoku", Gomoku, 15, 15, 5},
		{"SmallGame", SmallGame, 5, 5, 4},
		{"LargeGame", LargeGame, 10, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := tt.build()
			require.NoError(t, err)

			assert.Equal(t, tt.rows, g.Rows())
			assert.Equal(t, tt.columns, g.Columns())
			assert.Equal(t, tt.winLength, g.WinLength())
			assert.Equal(t, game.InProgress, g.Status())
		})
	}

	t.Run("CustomSquare", func(t *testing.T) {
		g, err := CustomSquare(8, 5)
		require.NoError(t, err)
		assert.Equal(t, 8, g.Rows())
		assert.Equal(t, 8, g.Columns())
		assert.Equal(t, 5, g.WinLength())

		_, err = CustomSquare(4, 5)
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("Contains the built-in presets", func(t *testing.T) {
		catalog, err := NewCatalog()
		require.NoError(t, err)

		preset, err := catalog.Lookup(ConnectFourName)
		require.NoError(t, err)
		assert.Equal(t, 6, preset.Rows)
		assert.Equal(t, 7, preset.Columns)
		assert.Equal(t, 4, preset.WinLength)

		assert.Len(t, catalog.List(), len(Builtin()))
	})

	t.Run("List is sorted by name", func(t *testing.T) {
		catalog, err := NewCatalog(Preset{Name: "a-first", Rows: 2, Columns: 2, WinLength: 2})
		require.NoError(t, err)

		presets := catalog.List()
		require.NotEmpty(t, presets)
		assert.Equal(t, "a-first", presets[0].Name)
		assert.Equal(t, "a-first", presets[0].Title)

		for i := 1; i < len(presets); i++ {
			assert.Less(t, presets[i-1].Name, presets[i].Name)
		}
	})

	t.Run("Unknown preset", func(t *testing.T) {
		catalog, err := NewCatalog()
		require.NoError(t, err)

		_, err = catalog.Lookup("chess")
		require.ErrorIs(t, err, apperror.ErrUnknownPreset)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		_, err := NewCatalog(Preset{Name: TicTacToeName, Rows: 4, Columns: 4, WinLength: 3})

		require.ErrorIs(t, err, apperror.ErrPresetExists)
	})

	t.Run("Invalid parameters", func(t *testing.T) {
		catalog, err := NewCatalog()
		require.NoError(t, err)

		err = catalog.Register(Preset{Name: "broken", Rows: 3, Columns: 5, WinLength: 4})
		require.ErrorIs(t, err, game.ErrWinLengthExceedsBoard)

		_, err = catalog.Lookup("broken")
		require.ErrorIs(t, err, apperror.ErrUnknownPreset)
	})

	t.Run("Empty name", func(t *testing.T) {
		catalog, err := NewCatalog()
		require.NoError(t, err)

		err = catalog.Register(Preset{Rows: 3, Columns: 3, WinLength: 3})
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})

	t.Run("Preset builds a game", func(t *testing.T) {
		catalog, err := NewCatalog()
		require.NoError(t, err)

		preset, err := catalog.Lookup(GomokuName)
		require.NoError(t, err)

		g, err := preset.Build()
		require.NoError(t, err)
		assert.Equal(t, 15, g.Rows())
		assert.Equal(t, 5, g.WinLength())
	})
}
