package estimate

import (
	"github.com/buildcost/estimator/pkg/catalog"
	"github.com/buildcost/estimator/pkg/constants"
)

// TakeOff converts a specification into physical material quantities. Cement
// and steel scale with the quality factor; bricks, sand and crush are
// quality-independent. All quantities are deterministic linear functions of
// the effective area and are left unrounded to keep rounding error out of
// the aggregates.
func TakeOff(spec ProjectSpecification, cat *catalog.RateCatalog) Quantities {
	effectiveArea := spec.EffectiveArea()
	qf := cat.QualityFactor(spec.MaterialQuality)

	return Quantities{
		CementBags:  effectiveArea * constants.CementBagsPerSqft * qf,
		SteelKg:     effectiveArea * constants.SteelKgPerSqft * qf,
		BricksCount: effectiveArea * constants.BricksPerSqft,
		SandCft:     effectiveArea * constants.SandCftPerSqft,
		CrushCft:    effectiveArea * constants.CrushCftPerSqft,
	}
}
