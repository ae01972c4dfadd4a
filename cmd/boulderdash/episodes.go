package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/boulderdash/internal/storage"
)

var (
	flagEpisodesLevel string
	flagEpisodesLimit int
)

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "List recently recorded episodes",
	Long: `Display recently recorded episodes for one level from the episode
database. --level is required and must match the level path given to run.

Examples:
  boulderdash episodes --level level.txt --limit 20
  boulderdash episodes --level level.txt`,
	Run: runEpisodes,
}

func init() {
	episodesCmd.Flags().StringVar(&flagEpisodesLevel, "level", "", "Level whose episodes to list (required)")
	episodesCmd.Flags().IntVar(&flagEpisodesLimit, "limit", 10, "Maximum number of episodes to show")
}

func runEpisodes(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episode database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagEpisodesLevel == "" {
		fmt.Fprintln(os.Stderr, "Error: --level is required")
		os.Exit(1)
	}

	episodes, err := store.RecentEpisodes(flagEpisodesLevel, flagEpisodesLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-6s  %-6s  %s\n", "ID", "Preset", "Steps", "Gems", "Solved", "Alive", "When")
	for _, ep := range episodes {
		fmt.Printf("  %-4d  %-8s  %-6d  %-6d  %-6v  %-6v  %s\n",
			ep.ID, ep.Preset, ep.Steps, ep.GemsCollected, ep.Solved, ep.AgentAlive,
			ep.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(flagEpisodesLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level stats: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nEpisodes: %d  Solved: %d  Avg steps: %.1f  Best steps: %d  Last played: %s\n",
		stats.EpisodeCount, stats.SolvedCount, stats.AvgSteps, stats.BestSteps,
		stats.LastPlayed.Format("2006-01-02 15:04"))
}
