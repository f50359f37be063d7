package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/platform/tui"
)

var flagReplayMono bool

var replayCmd = &cobra.Command{
	Use:   "replay <file.yaml|number>",
	Short: "Step through a level's solution",
	Long: `Open an interactive viewer that replays the recorded solution.

Controls:
  →/l      - Next move
  ←/h      - Previous move
  g/G      - Jump to start/end
  Space    - Play/pause
  ?        - More keys
  Q/Ctrl+C - Quit

Examples:
  hexslide replay 3
  hexslide replay ./levels/level-0003.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayMono, "mono", false, "Use the monochrome theme")
}

func runReplay(_ *cobra.Command, args []string) {
	lvl, err := loadLevelArg(args[0])
	if err != nil {
		fatal("%v", err)
	}

	theme := tui.DefaultTheme()
	if flagReplayMono {
		theme = tui.MonochromeTheme()
	}
	if err := tui.RunReplay(lvl, theme); err != nil {
		fatal("%v", err)
	}
}
