package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/hexslide/levels"
	"github.com/vovakirdan/hexslide/internal/storage"
)

var (
	flagGenOut  string
	flagGenSave bool
	flagGenName string
)

var generateCmd = &cobra.Command{
	Use:   "generate [number]",
	Short: "Generate one level",
	Long: `Generate a single level and print its preview.

The level number defaults to 1. With --progression enabled in the config,
the number also scales the difficulty.

Examples:
  hexslide generate
  hexslide generate 12 --seed 7
  hexslide generate --preset easy --out ./levels
  hexslide generate 5 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenOut, "out", "", "Directory to write the level YAML to")
	generateCmd.Flags().BoolVar(&flagGenSave, "save", false, "Store the level in the catalogue")
	generateCmd.Flags().StringVar(&flagGenName, "name", "", "Level name recorded in the file")
}

func runGenerate(_ *cobra.Command, args []string) {
	number := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fatal("level number must be a positive integer, got %q", args[0])
		}
		number = n
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	logger := newLogger()

	req, err := cfg.Request(baseSeed(), number)
	if err != nil {
		fatal("%v", err)
	}

	lvl, err := newGenerator(cfg, logger).Generate(req)
	if err != nil {
		var tmplErr *core.TemplateError
		if errors.As(err, &tmplErr) {
			fatal("invalid request: %v", err)
		}
		fatal("generation failed: %v", err)
	}

	printLevel(lvl)

	if flagGenOut != "" {
		path, err := levels.NewLoader(flagGenOut).Save(lvl, flagGenName)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Wrote %s\n", path)
	}

	if flagGenSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fatal("%v", err)
		}
		defer store.Close()
		if err := store.SaveLevel(lvl, flagGenName); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Stored level %d\n", lvl.Number)
	}
}
