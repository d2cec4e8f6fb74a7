package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/kariannharris-star/dungeon-crawlr/internal/engine"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	simRolls int
	simSeed  int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Roll the loot tables many times and report observed frequencies",
	Long: `Rolls every chest loot tier repeatedly and prints observed frequencies
next to the declared probabilities. Useful for sanity-checking table
weights after editing content.`,
	Run: func(cmd *cobra.Command, args []string) {
		seed := simSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := engine.NewSource(seed)

		for _, tier := range engine.LootTiers() {
			counts := map[string]int{}
			goldTotal := 0
			bar := progressbar.Default(int64(simRolls), tier)
			for i := 0; i < simRolls; i++ {
				itemID, gold, ok := engine.RollTier(tier, rng)
				switch {
				case !ok:
					counts["(empty)"]++
				case itemID != "":
					counts[itemID]++
				default:
					counts["gold"]++
					goldTotal += gold
				}
				_ = bar.Add(1)
			}

			declared := engine.TierWeights(tier)
			labels := make([]string, 0, len(counts))
			for label := range counts {
				labels = append(labels, label)
			}
			sort.Strings(labels)

			fmt.Printf("\n%s (%d rolls):\n", tier, simRolls)
			for _, label := range labels {
				observed := float64(counts[label]) / float64(simRolls)
				if want, ok := declared[label]; ok {
					fmt.Printf("  %-24s %6.3f  (declared %.3f)\n", label, observed, want)
				} else {
					fmt.Printf("  %-24s %6.3f\n", label, observed)
				}
			}
			if n := counts["gold"]; n > 0 {
				fmt.Printf("  average gold payout: %.1f\n", float64(goldTotal)/float64(n))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVar(&simRolls, "rolls", 100000, "rolls per tier")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "RNG seed (default: time-based)")
}
