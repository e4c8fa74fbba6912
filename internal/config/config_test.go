package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/connectn/internal/apperror"
	"github.com/rocketscienceinc/connectn/internal/builder"
	"github.com/rocketscienceinc/connectn/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with a custom preset
		path := writeConfig(t, `
log-level: debug
default-preset: wide
presets:
  - name: wide
    title: Wide board
    rows: 4
    columns: 9
    win-length: 4
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: every field is read
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "wide", conf.DefaultPreset)
		require.Len(t, conf.Presets, 1)
		assert.Equal(t, 9, conf.Presets[0].Columns)
		assert.Equal(t, 4, conf.Presets[0].WinLength)

		// Then: the catalog contains the custom preset
		catalog, err := conf.Catalog()
		require.NoError(t, err)

		preset, err := catalog.Lookup("wide")
		require.NoError(t, err)
		assert.Equal(t, "Wide board", preset.Title)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: the file does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: env defaults apply
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "tic-tac-toe", conf.DefaultPreset)
		assert.Empty(t, conf.Presets)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("CONNECTN_LOG_LEVEL", "error")

		conf, err := Load(writeConfig(t, "log-level: debug\n"))
		require.NoError(t, err)

		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Malformed file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "presets: [oops\n"))

		require.Error(t, err)
	})

	t.Run("MustLoad panics on a malformed file", func(t *testing.T) {
		path := writeConfig(t, "presets: [oops\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Catalog(t *testing.T) {
	t.Run("Invalid preset", func(t *testing.T) {
		conf := &Config{
			DefaultPreset: "tic-tac-toe",
			Presets:       []builder.Preset{{Name: "tall", Rows: 9, Columns: 2, WinLength: 3}},
		}

		_, err := conf.Catalog()
		require.ErrorIs(t, err, game.ErrWinLengthExceedsBoard)
	})

	t.Run("Unknown default preset", func(t *testing.T) {
		conf := &Config{DefaultPreset: "chess"}

		_, err := conf.Catalog()
		require.ErrorIs(t, err, apperror.ErrUnknownPreset)
	})
}
