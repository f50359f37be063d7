package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/platform/tui"
	"github.com/vovakirdan/hexslide/internal/storage"
)

var (
	flagListLimit       int
	flagListInteractive bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored levels",
	Long: `Show the levels in the catalogue.

With --interactive, browse the catalogue and open the replay viewer with
Enter.

Examples:
  hexslide list
  hexslide list --limit 20
  hexslide list -i`,
	Run: runList,
}

func init() {
	listCmd.Flags().IntVar(&flagListLimit, "limit", 0, "Maximum rows to print (0 = all)")
	listCmd.Flags().BoolVarP(&flagListInteractive, "interactive", "i", false, "Browse levels interactively")
}

func runList(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("%v", err)
	}
	defer store.Close()

	if flagListInteractive {
		if err := tui.RunCatalogue(store, tui.DefaultTheme()); err != nil {
			fatal("%v", err)
		}
		return
	}

	entries, err := store.ListLevels(flagListLimit)
	if err != nil {
		fatal("%v", err)
	}
	if len(entries) == 0 {
		fmt.Println("No levels stored.")
		fmt.Println("Run 'hexslide batch' to generate some.")
		return
	}

	tbl := tui.NewLevelTable(entries, 0, tui.DefaultTheme())
	tbl.Blur()
	fmt.Println(tbl.View())

	stats, err := store.Stats()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println()
	fmt.Printf("%d levels, %d from fallback, %.1f moves and %.1f pieces on average\n",
		stats.Levels, stats.Fallbacks, stats.AvgMoves, stats.AvgPieces)
}
