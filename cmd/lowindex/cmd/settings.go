package cmd

import "github.com/lowindex/sims/pkg/sims"

func buildSettings() (*sims.Settings, sims.Node, error) {
	pres, include, exclude, err := loadPresentation(presFile)
	if err != nil {
		return nil, 0, err
	}
	settings := sims.NewSettings(pres).
		NumberOfThreads(threadsFlag).
		LongRuleLength(cfg.Search.LongRuleLength).
		IdleThreadRestarts(cfg.Search.IdleThreadRestarts)
	if len(include) > 0 {
		settings.Include(include...)
	}
	if len(exclude) > 0 {
		settings.Exclude(exclude...)
	}
	return settings, sims.Node(maxNodesFlag), nil
}
