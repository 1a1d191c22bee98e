package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lowindex/sims/pkg/sims"
)

var generatingPairsCmd = &cobra.Command{
	Use:   "generating-pairs",
	Short: "Print one generating pair per non-tree edge of the first congruence of index at most --max-nodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, maxNodes, err := buildSettings()
		if err != nil {
			return err
		}
		c, ok := sims.NewSims1(settings).FindIf(maxNodes, func(*sims.Congruence) bool { return true })
		if !ok {
			return fmt.Errorf("no congruence found at index at most %d", maxNodes)
		}
		it := sims.NewGeneratingPairsIterator(c)
		for _, pair := range it.All() {
			cmd.Printf("%s = %s\n", pair.Left, pair.Right)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generatingPairsCmd)
}
