package bench

import (
	"iniharness/internal/config"
	"iniharness/internal/domain"
)

// Default iteration counts. They keep each scenario in the hundreds of
// milliseconds on a typical machine and can be overridden per scenario ID.
var (
	parseRegistry = []domain.Scenario{
		{ID: "parse/simple", Title: "Simple INI (2 sections, 6 keys)", Fixture: SimpleINI, Iterations: 5000},
		{ID: "parse/multiple", Title: "Multiple sections (4 sections, 10 keys)", Fixture: MultipleSectionsINI, Iterations: 2000},
		{ID: "parse/large", Title: "Large INI (3 sections, 15 keys)", Fixture: LargeINI, Iterations: 2000},
	}

	writeRegistry = []domain.Scenario{
		{ID: "write/simple", Title: "Simple INI (2 sections, 6 keys)", Fixture: SimpleINI, Iterations: 3000, Kind: domain.ScenarioWrite},
		{ID: "write/multiple", Title: "Multiple sections (4 sections, 10 keys)", Fixture: MultipleSectionsINI, Iterations: 2000, Kind: domain.ScenarioWrite},
	}
)

// ParseScenarios returns the parsing scenarios with configured iteration counts
func ParseScenarios(cfg *config.Config) []domain.Scenario {
	return withIterations(cfg, parseRegistry)
}

// WriteScenarios returns the writing scenarios with configured iteration counts
func WriteScenarios(cfg *config.Config) []domain.Scenario {
	return withIterations(cfg, writeRegistry)
}

func withIterations(cfg *config.Config, registry []domain.Scenario) []domain.Scenario {
	scenarios := make([]domain.Scenario, len(registry))
	for i, s := range registry {
		s.Iterations = cfg.Iterations(s.ID, s.Iterations)
		scenarios[i] = s
	}
	return scenarios
}
