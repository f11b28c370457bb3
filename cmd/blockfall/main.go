// blockfall runs the falling-block automaton in the terminal.
//
// Usage:
//
//	blockfall simulate           - Drop random pieces until the budget runs out or the field overflows
//	blockfall run <scenario>...  - Replay YAML scenarios and check their expectations
//	blockfall demo               - One random piece falling onto a floating slab
//	blockfall shapes             - List the piece catalog
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.blockfall, ./configs, embedded)
//	--seed <value>      - Override the configured RNG seed
//	--log-level <lvl>   - debug, info, warn or error
//	--no-color          - Disable colored output
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/render"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block automaton in your terminal",
	Long: `Blockfall drives a deterministic falling-block field: pieces fall one
row per tick, lock when they land, full rows clear and debris sinks.

Available commands:
  simulate - Drop random pieces into one or more fields
  run      - Replay scenario files
  demo     - Watch a single piece meet a floating slab
  shapes   - Show the piece catalog

Examples:
  blockfall simulate --seed 7 --pieces 30
  blockfall simulate --panels 3 --trace
  blockfall run scenarios/*.yaml
  blockfall shapes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(shapesCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoColor {
		cfg.Render.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	})
	logger.SetLevel(cfg.LogLevel())
	return logger
}

// newRenderer colors output only when stdout is a terminal.
func newRenderer(cfg config.Config) *render.Renderer {
	return render.New(render.Options{
		Color:  cfg.Render.Color && term.IsTerminal(int(os.Stdout.Fd())),
		Empty:  cfg.Render.Empty,
		Filled: cfg.Render.Filled,
	})
}

// terminalWidth returns the stdout width, or 0 when it is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}

func fail(err error) {
	printError(os.Stderr, err)
	os.Exit(1)
}

// printError is the one error format of the command line.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
