package testutil

import (
	"testing"

	"github.com/buildcost/estimator/internal/estimator"
	"github.com/buildcost/estimator/pkg/estimate"
)

func TestFindProject(t *testing.T) {
	results := []estimator.ProjectEstimate{
		{Estimate: &estimate.EstimateResult{ProjectName: "Alpha"}},
		{Estimate: &estimate.EstimateResult{ProjectName: "Beta"}},
	}

	if got := FindProject(results, "Beta"); got == nil || got.Estimate.ProjectName != "Beta" {
		t.Errorf("FindProject(Beta) = %v", got)
	}
	if got := FindProject(results, "Gamma"); got != nil {
		t.Errorf("FindProject(Gamma) = %v, expected nil", got)
	}
}

func TestFindLineItem(t *testing.T) {
	b := estimate.Breakdown{
		estimate.CategoryMaterials: []estimate.LineItem{
			{Description: "Cement", Amount: 500000},
			{Description: "Steel", Amount: 980000},
		},
	}

	if got := FindLineItem(b, estimate.CategoryMaterials, "Steel"); got == nil || got.Amount != 980000 {
		t.Errorf("FindLineItem(Steel) = %v", got)
	}
	if got := FindLineItem(b, estimate.CategoryMaterials, "Bricks"); got != nil {
		t.Errorf("FindLineItem(Bricks) = %v, expected nil", got)
	}
	if got := FindLineItem(b, estimate.CategoryLabor, "Cement"); got != nil {
		t.Errorf("FindLineItem in missing category = %v, expected nil", got)
	}
}
