// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/buildcost/estimator/internal/estimator"
	"github.com/buildcost/estimator/pkg/estimate"
)

// FindProject finds a project estimate by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindProject(results []estimator.ProjectEstimate, name string) *estimator.ProjectEstimate {
	for i := range results {
		if results[i].Estimate.ProjectName == name {
			return &results[i]
		}
	}
	return nil
}

// FindLineItem finds a line item by description within one breakdown
// category. Returns a pointer to the line item if found, nil otherwise.
func FindLineItem(b estimate.Breakdown, category, description string) *estimate.LineItem {
	lines := b[category]
	for i := range lines {
		if lines[i].Description == description {
			return &lines[i]
		}
	}
	return nil
}
