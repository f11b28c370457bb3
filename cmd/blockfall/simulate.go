package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/render"
	"github.com/vovakirdan/blockfall/internal/session"
)

var (
	flagPieces int
	flagPanels int
	flagTrace  bool
	flagDelay  int
	flagMasked bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drop random pieces into one or more fields",
	Long: `Spawns random pieces and ticks each field until it settles before the
next piece. Stops when the piece budget is used up or a new piece no longer
fits. With --panels, several independent fields run side by side; panel i
uses seed+i.

Examples:
  blockfall simulate                       # Config defaults
  blockfall simulate --seed 3 --pieces 50  # Longer run
  blockfall simulate --trace --delay 50    # Watch every tick
  blockfall simulate --panels 3            # Three fields side by side`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagPieces, "pieces", -1, "Number of pieces per field (0 = until overflow, default from config)")
	simulateCmd.Flags().IntVar(&flagPanels, "panels", 0, "Number of fields (default from config)")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the field after every tick")
	simulateCmd.Flags().IntVar(&flagDelay, "delay", 0, "Delay between traced frames in milliseconds")
	simulateCmd.Flags().BoolVar(&flagMasked, "masked", false, "Place only the occupied cells of each piece")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}
	if flagPieces >= 0 {
		cfg.Simulation.Pieces = flagPieces
	}
	if flagPanels > 0 {
		cfg.Simulation.Panels = flagPanels
	}
	if flagMasked {
		cfg.Simulation.MaskedPlacement = true
	}

	logger := newLogger(cfg)
	r := newRenderer(cfg)

	// each panel is two glyphs per cell plus a row prefix and padding
	panelWidth := cfg.Field.Width*2 + 3
	if tw := terminalWidth(); tw > 0 && panelWidth*cfg.Simulation.Panels > tw {
		logger.Warn("panels wider than terminal", "panels", cfg.Simulation.Panels, "width", tw)
	}

	logger.Info("simulate", "seed", cfg.Simulation.Seed, "panels", cfg.Simulation.Panels,
		"pieces", cfg.Simulation.Pieces, "size", fmt.Sprintf("%dx%d", cfg.Field.Width, cfg.Field.Height))

	board := session.NewBoard(cfg.Simulation.Panels, session.OptionsFrom(cfg), cfg.Simulation.Seed, logger)
	delay := time.Duration(flagDelay) * time.Millisecond

	var observe func(*session.Board)
	if flagTrace {
		observe = func(b *session.Board) {
			fmt.Println(r.Panels(panels(b)))
			if delay > 0 {
				time.Sleep(delay)
			}
		}
	}

	stats, err := board.Run(observe)
	if !flagTrace {
		fmt.Println(r.Panels(panels(board)))
	}
	fmt.Println()
	printStats(stats)
	if err != nil {
		fail(err)
	}
}

func panels(b *session.Board) []render.Panel {
	fields := b.Fields()
	out := make([]render.Panel, len(fields))
	for i, f := range fields {
		out[i] = render.Panel{Title: fmt.Sprintf("panel %d", i), Field: f}
	}
	return out
}

func printStats(stats []session.Stats) {
	fmt.Printf("  %-5s  %6s  %5s  %7s  %6s  %s\n", "Panel", "Pieces", "Ticks", "Cleared", "Height", "End")
	fmt.Printf("  %-5s  %6s  %5s  %7s  %6s  %s\n", "-----", "------", "-----", "-------", "------", "---")
	for i, st := range stats {
		end := "budget"
		if st.Overflowed {
			end = "overflow"
		}
		fmt.Printf("  %-5d  %6d  %5d  %7d  %6d  %s\n", i, st.Pieces, st.Ticks, st.Cleared, st.Height, end)
	}
}
