// Package estimator runs the estimation engine over the projects named in a
// configuration, attaching advisory warnings and estimate identifiers. It is
// the orchestration layer between configuration and the pure engine.
package estimator

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/buildcost/estimator/internal/config"
	"github.com/buildcost/estimator/pkg/estimate"
)

// ProjectEstimate pairs one configured project with its computed estimate
// and any advisory warnings gathered along the way.
type ProjectEstimate struct {
	Spec     estimate.ProjectSpecification
	Estimate *estimate.EstimateResult
	Warnings []string
}

// Run estimates every project in the configuration against its rate catalog.
// A validation failure on any project aborts the run; advisory notes (space
// utilization) are collected as warnings, not failures.
func Run(logger *zap.Logger, conf *config.Configuration) ([]ProjectEstimate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cat := conf.RateCatalog()

	results := make([]ProjectEstimate, 0, len(conf.Projects))
	for _, spec := range conf.Projects {
		result, err := estimate.Calculate(logger, spec, cat)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", spec.ProjectName, err)
		}
		result.EstimateID = uuid.NewString()

		var warnings []string
		if _, note := estimate.Utilization(spec); note != "" {
			warnings = append(warnings, note)
		}

		logger.Info("estimate computed",
			zap.String("op", "estimator.Run"),
			zap.String("project", spec.ProjectName),
			zap.String("estimateId", result.EstimateID),
			zap.Float64("totalCost", result.TotalCost),
		)

		results = append(results, ProjectEstimate{
			Spec:     spec,
			Estimate: result,
			Warnings: warnings,
		})
	}

	return results, nil
}
