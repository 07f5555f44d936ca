// Package projection runs the EPF engine across configured scenarios.
package projection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Amanile/epf-calculator/internal/config"
	"github.com/Amanile/epf-calculator/pkg/epf"
	"github.com/Amanile/epf-calculator/pkg/validation"
)

// ScenarioProjection holds the projection outcome for a single scenario.
type ScenarioProjection struct {
	Name   string
	Input  epf.Input
	Result epf.Result
}

// RunScenarios projects every active scenario in the configuration. Inactive
// scenarios are skipped; an invalid scenario aborts the run with an error
// naming it.
func RunScenarios(logger *zap.Logger, conf config.Configuration) ([]ScenarioProjection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []ScenarioProjection
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "projection.RunScenarios"),
			)
			continue
		}

		in := scenario.Input()
		if err := validation.ValidateInput(in); err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		result := epf.Project(in)
		logger.Debug(fmt.Sprintf("projected scenario %s", scenario.Name),
			zap.String("op", "projection.RunScenarios"),
			zap.Int("years", len(result.Years)),
			zap.Float64("maturity", result.Maturity),
		)

		results = append(results, ScenarioProjection{
			Name:   scenario.Name,
			Input:  in,
			Result: result,
		})
	}

	return results, nil
}
