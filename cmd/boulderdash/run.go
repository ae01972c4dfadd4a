package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/example/boulderdash/internal/boulder"
	"github.com/example/boulderdash/internal/config"
	"github.com/example/boulderdash/internal/storage"
)

var (
	flagRunConfig string
	flagRunPreset string
	flagRunQuiet  bool
)

var runCmd = &cobra.Command{
	Use:   "run <level-file> [actions...]",
	Short: "Apply a scripted action sequence against a level",
	Long: `Parse the level file and apply the given action tokens (up/right/down/left,
case-insensitive) in order, printing the resulting board, reward signal, and
hash after each tick.

Examples:
  boulderdash run level.txt up right right down
  boulderdash run level.txt --preset falling --quiet up up left`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunConfig, "config", "", "Path to a rule-set override YAML")
	runCmd.Flags().StringVar(&flagRunPreset, "preset", string(config.PresetClassic), "Rule-set preset: classic, falling, chaos")
	runCmd.Flags().BoolVar(&flagRunQuiet, "quiet", false, "Suppress per-tick board output; print only the final summary")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "boulderdash"})

	levelPath := args[0]
	actionTokens := args[1:]

	if !config.IsValidPreset(flagRunPreset) {
		logger.Error("unknown preset", "preset", flagRunPreset)
		os.Exit(1)
	}

	base, err := config.LoadPreset(config.Preset(flagRunPreset))
	if err != nil {
		logger.Warn("loading preset, falling back to hardcoded defaults", "preset", flagRunPreset, "error", err)
		base = config.DefaultParameters(config.Preset(flagRunPreset))
	}

	params, err := config.Load(flagRunConfig, base)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	levelData, err := os.ReadFile(levelPath)
	if err != nil {
		logger.Error("reading level file", "path", levelPath, "error", err)
		os.Exit(1)
	}

	st, err := boulder.New(strings.TrimSpace(string(levelData)), params.ToCoreConfig())
	if err != nil {
		logger.Error("parsing level", "error", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		st.RandomState = boulder.SplitMix64(uint64(flagSeed))
	}

	var rewardAccum uint64
	steps := 0

	for _, token := range actionTokens {
		action, ok := boulder.ParseAction(token)
		if !ok {
			logger.Error("unrecognized action token", "token", token)
			os.Exit(1)
		}
		if err := st.ApplyAction(action); err != nil {
			logger.Error("applying action", "action", token, "error", err)
			os.Exit(1)
		}
		steps++
		rewardAccum |= st.GetRewardSignal()

		if !flagRunQuiet {
			fmt.Print(st.RenderGlyphs())
			fmt.Printf("action=%s reward=%d hash=%d\n\n", action, st.GetRewardSignal(), st.GetHash())
		}
		if st.IsTerminal() {
			break
		}
	}

	fmt.Printf("steps=%d gems=%d/%d solved=%v alive=%v reward_mask=%d final_hash=%d\n",
		steps, st.GemsCollected, st.GemsRequired, st.IsSolution(), st.AgentAlive(), rewardAccum, st.GetHash())

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open episode database", "error", err)
			return
		}
		defer store.Close()

		_, err = store.SaveEpisode(storage.Episode{
			LevelName:     levelPath,
			Preset:        flagRunPreset,
			Steps:         steps,
			GemsCollected: st.GemsCollected,
			Solved:        st.IsSolution(),
			AgentAlive:    st.AgentAlive(),
			FinalHash:     st.GetHash(),
		})
		if err != nil {
			logger.Warn("could not save episode", "error", err)
		}
	}
}
