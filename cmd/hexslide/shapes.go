package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/hexslide/shapes"
)

var (
	flagShapeWidth  int
	flagShapeHeight int
	flagShapeRadius int
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [name]",
	Short: "List or preview grid shapes",
	Long: `Without arguments, list the registered grid shapes. With a name, print
the empty grid for the given size flags.

Examples:
  hexslide shapes
  hexslide shapes hexagon --radius 3
  hexslide shapes rect --width 7 --height 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShapes,
}

func init() {
	shapesCmd.Flags().IntVar(&flagShapeWidth, "width", 6, "Width for rect shapes")
	shapesCmd.Flags().IntVar(&flagShapeHeight, "height", 5, "Height for rect and diamond shapes")
	shapesCmd.Flags().IntVar(&flagShapeRadius, "radius", 4, "Radius for hexagon, ring and diamond shapes")
}

func runShapes(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		list := shapes.List()

		maxLen := 4 // "Name" header
		for _, s := range list {
			if len(s.Name) > maxLen {
				maxLen = len(s.Name)
			}
		}

		fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Description")
		fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
		for _, s := range list {
			fmt.Printf("  %-*s  %s\n", maxLen, s.Name, s.Description)
		}
		return
	}

	s, err := shapes.Build(args[0], shapes.Params{
		Width:  flagShapeWidth,
		Height: flagShapeHeight,
		Radius: flagShapeRadius,
	})
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("%s: %d cells\n", s.Name, s.Count())
	fmt.Print(core.RenderASCII(core.NewGrid(s), core.NewBoard()))
}
