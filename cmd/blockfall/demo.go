package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/render"
	"github.com/vovakirdan/blockfall/internal/session"
)

var flagDemoDelay int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch a single piece meet a floating slab",
	Long: `Places one random piece near the top of a 10x20 field and a two-row
slab across the middle, then ticks until the field settles, printing the
field and its content height after every tick.`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoDelay, "delay", 100, "Delay between frames in milliseconds")
}

func runDemo(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}
	logger := newLogger(cfg)
	r := newRenderer(cfg)

	f, sp, err := session.Demo(cfg.Simulation.Seed)
	if err != nil {
		fail(err)
	}
	logger.Info("demo", "seed", cfg.Simulation.Seed, "shape", sp.Shape, "color", sp.Color, "turns", sp.Turns)

	fmt.Println(r.Field(f))
	for tick := 1; tick <= cfg.Simulation.MaxTicks; tick++ {
		res := f.Step()
		if !res.Changed {
			fmt.Printf("settled after %d ticks\n", tick-1)
			return
		}
		fmt.Printf("tick %d: %s, content height %d\n", tick, res.Kind, f.ContentHeight())
		fmt.Println(r.Field(f))
		fmt.Println(render.Status(f))
		if flagDemoDelay > 0 {
			time.Sleep(time.Duration(flagDemoDelay) * time.Millisecond)
		}
	}
	logger.Warn("demo did not settle", "max_ticks", cfg.Simulation.MaxTicks)
}
