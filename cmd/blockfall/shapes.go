package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/piece"
	"github.com/vovakirdan/blockfall/internal/render"
)

var flagShapesDraw bool

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the piece catalog",
	Long:  `Shows every shape with its bounding box and cell count.`,
	Run:   runShapes,
}

func init() {
	shapesCmd.Flags().BoolVar(&flagShapesDraw, "draw", false, "Draw each shape")
}

func runShapes(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}
	r := newRenderer(cfg)

	fmt.Println("Shapes:")
	fmt.Println()
	fmt.Printf("  %-2s  %-4s  %s\n", "ID", "Size", "Cells")
	fmt.Printf("  %-2s  %-4s  %s\n", "--", "----", "-----")
	for _, info := range piece.List() {
		fmt.Printf("  %-2s  %dx%-2d  %d\n", info.ID, info.Width, info.Height, info.Cells)
		if flagShapesDraw {
			drawShape(r, info)
		}
	}
}

// drawShape cycles through the colors so neighbouring shapes differ.
func drawShape(r *render.Renderer, info piece.Info) {
	colors := field.Colors()
	f := field.New(info.Width, info.Height)
	if _, _, err := f.Place(0, 0, piece.New(info.Shape, colors[int(info.Shape)%len(colors)])); err != nil {
		fail(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(r.Field(f), "\n"), "\n") {
		fmt.Printf("      %s\n", line)
	}
	fmt.Println()
}
