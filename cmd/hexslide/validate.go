package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.yaml|number>...",
	Short: "Check levels",
	Long: `Replay each level's recorded solution and check its invariants:
every piece on the grid, no pair of pieces blocking each other forever,
a legal solution within the move limit, and a removal target no larger
than the piece count.

Exits with status 1 if any level fails.

Examples:
  hexslide validate ./levels/*.yaml
  hexslide validate 1 2 3`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, arg := range args {
		lvl, err := loadLevelArg(arg)
		if err != nil {
			fmt.Printf("%-32s ERROR %v\n", arg, err)
			failed++
			continue
		}
		if err := lvl.Check(); err != nil {
			fmt.Printf("%-32s FAIL  %v\n", arg, err)
			failed++
			continue
		}
		fmt.Printf("%-32s OK    %d pieces, %d moves%s\n", arg, len(lvl.Pieces), len(lvl.Solution), removalNote(lvl))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d levels failed\n", failed, len(args))
		os.Exit(1)
	}
}

// removalNote flags levels whose recorded solution removes fewer pieces
// than the removal target. Such levels are legal; the player has to find
// removals the recorded solution does not make.
func removalNote(lvl core.Level) string {
	removals, err := core.CountRemovals(lvl.Grid(), lvl.Board(), lvl.Solution)
	if err != nil || removals >= lvl.RemovalTarget {
		return ""
	}
	return fmt.Sprintf(" (solution removes %d, target %d)", removals, lvl.RemovalTarget)
}
