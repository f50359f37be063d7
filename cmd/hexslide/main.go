// hexslide generates and validates hexagonal sliding-piece puzzles.
//
// Usage:
//
//	hexslide generate [number]  - Generate one level and preview it
//	hexslide batch              - Generate a numbered run of levels into the catalogue
//	hexslide validate <level>   - Check a level file or stored level
//	hexslide show <level>       - Print a level preview
//	hexslide replay <level>     - Step through a level's solution
//	hexslide list               - List stored levels
//	hexslide shapes [name]      - List or preview grid shapes
//	hexslide serve              - Serve the catalogue over SSH
//
// Global flags:
//
//	--seed <value>    - RNG seed (0 = random based on time)
//	--config <path>   - Generator config YAML
//	--db <path>       - Level catalogue (default: ~/.hexslide/levels.db)
//	--preset <name>   - Difficulty preset: easy, normal, hard
//	--verbose         - Log generation attempts
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexslide/internal/config"
	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/hexslide/levels"
	"github.com/vovakirdan/hexslide/internal/storage"
)

var (
	// Global flags
	flagSeed    uint64
	flagConfig  string
	flagDBPath  string
	flagPreset  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexslide",
	Short: "hexslide - hexagonal sliding-piece puzzle generator",
	Long: `hexslide builds puzzles on hexagonal grids. Every piece faces one of
six directions and slides until it leaves the grid or hits another piece.
Each generated level comes with a recorded solution and is checked to be
free of pieces that block each other forever.

Available commands:
  generate - Generate one level
  batch    - Generate levels into the catalogue
  validate - Check a level
  show     - Print a level preview
  replay   - Step through a level's solution
  list     - List stored levels
  shapes   - List or preview grid shapes
  serve    - Serve the catalogue over SSH

Examples:
  hexslide generate --seed 42
  hexslide batch --count 50 --preset hard
  hexslide validate ./levels/level-0003.yaml
  hexslide replay 3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to generator config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexslide/levels.db", "Path to level catalogue")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log generation attempts")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger; --verbose enables attempt diagnostics.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "hexslide",
		Level:  level,
	})
}

// loadConfig loads the generator config and applies --preset.
func loadConfig() (config.GeneratorConfig, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.GeneratorConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GeneratorConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newGenerator builds a generator from the config.
func newGenerator(cfg config.GeneratorConfig, logger *log.Logger) *core.Generator {
	opts := append(cfg.GeneratorOptions(), core.WithLogger(logger))
	return core.NewGenerator(opts...)
}

// baseSeed returns --seed, or a time-based seed when it is zero.
func baseSeed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}

// loadLevelArg resolves a level argument: a YAML file path, or a level
// number in the catalogue.
func loadLevelArg(arg string) (core.Level, error) {
	ext := strings.ToLower(filepath.Ext(arg))
	if ext == ".yaml" || ext == ".yml" {
		f, err := levels.NewLoader(filepath.Dir(arg)).LoadFile(arg)
		if err != nil {
			return core.Level{}, err
		}
		return f.Level, nil
	}

	number, err := strconv.Atoi(arg)
	if err != nil {
		return core.Level{}, fmt.Errorf("%q is neither a level file nor a level number", arg)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return core.Level{}, err
	}
	defer store.Close()

	return store.LoadLevel(number)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
