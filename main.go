// connectn plays configurable m,n,k games (tic-tac-toe, connect four, gomoku and custom boards).
//
// Usage:
//
//	connectn presets                   - List board presets
//	connectn play --move 0,0 ...       - Play moves and print the final state as JSON
//	connectn replay <file-or-dir>...   - Replay scenario files and check their expectations
//
// Global flags:
//
//	--config <path>  - Config file (default: ./config.yml)
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/connectn/internal/config"
)

var flagConfigPath string

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectn",
	Short: "Connect-N game engine",
	Long: `connectn plays two-player "N in a row" games on a rectangular board.

Examples:
  connectn presets
  connectn play --preset connect-four --move 5,0 --move 5,1
  connectn play --rows 4 --columns 9 --win-length 4 --move 0,0
  connectn replay testdata/scenarios`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.yml", "Path to config file")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}

// initialize config.
func initConfig() *config.Config {
	return config.MustLoad(flagConfigPath)
}

// initialize logger. Logs go to stderr so command output on stdout stays machine readable.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
