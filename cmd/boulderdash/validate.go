package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/boulderdash/internal/boulder"
)

var validateCmd = &cobra.Command{
	Use:   "validate <level-file>",
	Short: "Parse a level file and report its structure",
	Long: `Parse the level file and report rows, cols, gems required, and the
agent's starting position, or a structured parse error if the file is
malformed.

Examples:
  boulderdash validate level.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	levelPath := args[0]

	levelData, err := os.ReadFile(levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", levelPath, err)
		os.Exit(1)
	}

	st, err := boulder.New(strings.TrimSpace(string(levelData)), boulder.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid level: %v\n", err)
		os.Exit(1)
	}

	row, col, _ := st.IndexToPosition(st.GetAgentIndex())
	fmt.Printf("rows=%d cols=%d gems_required=%d agent=(%d,%d) hash=%d\n",
		st.Rows, st.Cols, st.GemsRequired, row, col, st.GetHash())
}
