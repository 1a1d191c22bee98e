package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lowindex/sims/pkg/sims"
)

var (
	minNFlag       int
	targetSizeFlag int
	minimal        bool
)

var reporcCmd = &cobra.Command{
	Use:   "reporc",
	Short: "Find a congruence whose generated transformation semigroup has exactly --target-size elements",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, maxNodes, err := buildSettings()
		if err != nil {
			return err
		}
		log := GetLogger()
		if minimal {
			orc := sims.NewMinimalRepOrc(settings, targetSizeFlag)
			c, ok := orc.Find()
			if !ok {
				log.Info("minimal-reporc found nothing", "target_size", targetSizeFlag)
				return fmt.Errorf("no congruence found with semigroup size %d", targetSizeFlag)
			}
			cmd.Printf("classes %d\n", c.NumClasses)
			return nil
		}
		orc := sims.NewRepOrc(settings, sims.Node(minNFlag), maxNodes, targetSizeFlag)
		defer startStatsReporter(orc.Stats(), reportInterval)()
		c, ok := orc.Find()
		if !ok {
			log.Info("reporc found nothing", "min_n", minNFlag, "max_nodes", maxNodes, "target_size", targetSizeFlag)
			return fmt.Errorf("no congruence found with semigroup size %d", targetSizeFlag)
		}
		cmd.Printf("classes %d\n", c.NumClasses)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reporcCmd)
	reporcCmd.Flags().IntVar(&minNFlag, "min-n", 1, "Minimum number of classes the congruence may have")
	reporcCmd.Flags().IntVar(&targetSizeFlag, "target-size", 1, "Exact size of the generated transformation semigroup")
	reporcCmd.Flags().BoolVar(&minimal, "minimal", false, "Search for the smallest-degree match (MinimalRepOrc)")
}
