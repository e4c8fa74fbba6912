package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/connectn/internal"
	"github.com/rocketscienceinc/connectn/internal/scenario"
)

var errBadMoveFlag = errors.New("move must look like row,col")

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := initConfig()

		application, err := app.New(initLogger(conf), conf)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %-14s %-6s %-7s %-10s %s\n", "NAME", "ROWS", "COLUMNS", "WIN LENGTH", "TITLE")
		for _, preset := range application.Presets() {
			marker := " "
			if preset.Name == conf.DefaultPreset {
				marker = "*"
			}

			fmt.Fprintf(out, "%s %-14s %-6d %-7d %-10d %s\n",
				marker, preset.Name, preset.Rows, preset.Columns, preset.WinLength, preset.Title)
		}

		return nil
	},
}

var (
	flagPreset    string
	flagRows      int
	flagColumns   int
	flagWinLength int
	flagMoves     []string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play moves on a board and print the final state",
	Long: `Plays the given moves in order, alternating players, starting with X.
Play stops at the first rejected move. The board is a preset, or explicit
dimensions when --rows, --columns and --win-length are given.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Preset name (default from config)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows")
	playCmd.Flags().IntVar(&flagColumns, "columns", 0, "Board columns")
	playCmd.Flags().IntVar(&flagWinLength, "win-length", 0, "Tokens in a row needed to win")
	playCmd.Flags().StringArrayVar(&flagMoves, "move", nil, "Move as row,col (repeatable)")

	playCmd.MarkFlagsRequiredTogether("rows", "columns", "win-length")
	playCmd.MarkFlagsMutuallyExclusive("preset", "rows")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	conf := initConfig()

	application, err := app.New(initLogger(conf), conf)
	if err != nil {
		return err
	}

	result := application.Play(cmd.Context(), scenario.Scenario{
		Name:      "play",
		Preset:    flagPreset,
		Rows:      flagRows,
		Columns:   flagColumns,
		WinLength: flagWinLength,
		Sized:     cmd.Flags().Changed("rows"),
		Moves:     moves,
	})

	if result.View != nil {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if err = encoder.Encode(result.View); err != nil {
			return fmt.Errorf("could not encode match: %w", err)
		}
	}

	return result.Err
}

func parseMoves(values []string) ([]scenario.Move, error) {
	moves := make([]scenario.Move, 0, len(values))

	for _, value := range values {
		rowText, colText, ok := strings.Cut(value, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errBadMoveFlag, value)
		}

		row, err := strconv.Atoi(strings.TrimSpace(rowText))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadMoveFlag, value)
		}

		col, err := strconv.Atoi(strings.TrimSpace(colText))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadMoveFlag, value)
		}

		moves = append(moves, scenario.Move{Row: row, Col: col})
	}

	return moves, nil
}

var replayCmd = &cobra.Command{
	Use:   "replay <file-or-dir>...",
	Short: "Replay scenario files and check their expectations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		conf := initConfig()

		return app.RunReplay(initLogger(conf), conf, args...)
	},
}
