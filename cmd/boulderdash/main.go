// boulderdash drives the deterministic tile-simulation core from the
// command line: run scripted episodes, validate level files, render board
// snapshots, and inspect recorded episode history.
//
// Usage:
//
//	boulderdash run <level-file> [actions...]
//	boulderdash validate <level-file>
//	boulderdash render <level-file> --out <file.png>
//	boulderdash episodes --level <level-file> [--db <path>] [--limit N]
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible episodes
//	--db <path>     - Set episode database path (default: ~/.boulderdash/episodes.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boulderdash",
	Short: "Drive the tile-simulation core from level files and action scripts",
	Long: `boulderdash drives the deterministic falling-tile simulation core from
level files and scripted action sequences.

Available commands:
  run       - Play a scripted action sequence against a level
  validate  - Parse a level file and report its structure
  render    - Render a level's current board to a PNG image
  episodes  - List recently recorded episodes

Examples:
  boulderdash run level.txt up right right down
  boulderdash validate level.txt
  boulderdash render level.txt --out board.png
  boulderdash episodes --level level.txt --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = deterministic default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boulderdash/episodes.db", "Path to episode database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(episodesCmd)
}
