package estimate

import (
	"math"

	"go.uber.org/zap"

	"github.com/buildcost/estimator/pkg/catalog"
	"github.com/buildcost/estimator/pkg/constants"
	"github.com/buildcost/estimator/pkg/mathutil"
)

// Calculate is the single entry point of the engine: it validates the
// specification, then runs take-off, aggregation and breakdown to produce a
// freshly constructed result. Validation failures come back as
// *validation.Error values; once validation passes every formula is total,
// so no other error is possible. A nil logger is replaced with a no-op
// logger; a nil catalog falls back to the built-in seed catalog.
func Calculate(logger *zap.Logger, spec ProjectSpecification, cat *catalog.RateCatalog) (*EstimateResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cat == nil {
		cat = catalog.Default()
	}

	spec = spec.withDefaults()
	if err := ValidateSpecification(spec, cat); err != nil {
		logger.Debug("specification rejected",
			zap.String("op", "estimate.Calculate"),
			zap.String("project", spec.ProjectName),
			zap.Error(err),
		)
		return nil, err
	}

	quantities := TakeOff(spec, cat)
	totals := Aggregate(spec, quantities, cat)
	breakdown := BuildBreakdown(spec, quantities, totals, cat)
	utilization, _ := Utilization(spec)

	result := &EstimateResult{
		ProjectName:           spec.ProjectName,
		MaterialCost:          mathutil.RoundCurrency(totals.MaterialCost),
		LaborCost:             mathutil.RoundCurrency(totals.LaborCost),
		EquipmentCost:         mathutil.RoundCurrency(totals.EquipmentCost),
		FinishesCost:          mathutil.RoundCurrency(totals.FinishesCost),
		OtherCosts:            mathutil.RoundCurrency(totals.OtherCosts),
		TotalCost:             mathutil.RoundCurrency(totals.TotalCost),
		Breakdown:             breakdown,
		EstimatedDurationDays: EstimatedDurationDays(spec.TotalAreaSqft, spec.FloorCount),
		AccuracyLevel:         constants.AccuracyLevel,
		UtilizationPercent:    utilization,
	}

	logger.Debug("estimate computed",
		zap.String("op", "estimate.Calculate"),
		zap.String("project", spec.ProjectName),
		zap.String("location", spec.Location),
		zap.Float64("totalCost", result.TotalCost),
	)

	return result, nil
}

// EstimatedDurationDays projects the construction duration from area and
// floor count, with a floor of 45 days.
func EstimatedDurationDays(areaSqft float64, floorCount int) int {
	days := int(math.Round(areaSqft / 1000 * constants.DurationDaysPer1000Sqft * float64(floorCount)))
	if days < constants.MinDurationDays {
		return constants.MinDurationDays
	}
	return days
}
