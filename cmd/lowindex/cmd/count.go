package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lowindex/sims/pkg/sims"
)

var twoSided bool

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count every congruence of index at most --max-nodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, maxNodes, err := buildSettings()
		if err != nil {
			return err
		}
		log := GetLogger()
		var n int64
		if twoSided {
			s := sims.NewSims2(settings)
			defer startStatsReporter(s.Stats(), reportInterval)()
			n = s.NumberOfCongruences(maxNodes)
		} else {
			s := sims.NewSims1(settings)
			defer startStatsReporter(s.Stats(), reportInterval)()
			n = s.NumberOfCongruences(maxNodes)
		}
		log.Info("count complete", "congruences", n, "max_nodes", maxNodes, "two_sided", twoSided)
		cmd.Printf("%d\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().BoolVar(&twoSided, "two-sided", false, "Enumerate two-sided congruences (Sims2) instead of right congruences (Sims1)")
}
