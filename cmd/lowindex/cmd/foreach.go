package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lowindex/sims/pkg/sims"
)

var forEachCmd = &cobra.Command{
	Use:   "for-each",
	Short: "Print every congruence of index at most --max-nodes as its edge table",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, maxNodes, err := buildSettings()
		if err != nil {
			return err
		}
		count := 0
		visit := func(c *sims.Congruence) bool {
			count++
			cmd.Printf("congruence %d: classes=%d\n", count, c.NumClasses)
			for n := sims.Node(0); n < c.NumClasses; n++ {
				for a := sims.Letter(0); a < sims.Letter(c.AlphabetSize()); a++ {
					cmd.Printf("  %d --%d--> %d\n", n, a, c.Apply(n, a))
				}
			}
			return true
		}
		if twoSided {
			s := sims.NewSims2(settings)
			defer startStatsReporter(s.Stats(), reportInterval)()
			s.ForEach(maxNodes, visit)
		} else {
			s := sims.NewSims1(settings)
			defer startStatsReporter(s.Stats(), reportInterval)()
			s.ForEach(maxNodes, visit)
		}
		GetLogger().Info("for-each complete", "congruences", count, "max_nodes", maxNodes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(forEachCmd)
}
