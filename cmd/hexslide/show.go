package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/platform/tui"
)

var flagShowPlain bool

var showCmd = &cobra.Command{
	Use:   "show <file.yaml|number>",
	Short: "Print a level preview",
	Long: `Print a level's board and objectives.

Colours from the level palette are used when stdout is a terminal; pipes
and --plain get the ASCII form.

Arrows: > E, \ SE, / SW, < W, ` + "`" + ` NW, ^ NE

Examples:
  hexslide show 3
  hexslide show ./levels/level-0003.yaml --plain`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowPlain, "plain", false, "Disable colours")
}

func runShow(_ *cobra.Command, args []string) {
	lvl, err := loadLevelArg(args[0])
	if err != nil {
		fatal("%v", err)
	}
	printLevel(lvl)
}

// printLevel writes a level preview to stdout, coloured on a terminal.
func printLevel(lvl core.Level) {
	if flagShowPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(core.RenderLevel(lvl))
		return
	}

	theme := tui.DefaultTheme()
	fmt.Println(theme.HUDTitle.Render(fmt.Sprintf("Level %d", lvl.Number)) +
		theme.HUDSeparator.Render(" | ") +
		theme.HUDValue.Render(fmt.Sprintf("%s | Pieces: %d | Moves: %d/%d | Remove: %d",
			lvl.Strategy, len(lvl.Pieces), len(lvl.Solution), lvl.MoveLimit, lvl.RemovalTarget)))
	fmt.Println(tui.RenderBoard(tui.BoardView{
		Grid:    lvl.Grid(),
		Board:   lvl.Board(),
		Palette: lvl.Palette,
	}, theme))
}
