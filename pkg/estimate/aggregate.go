package estimate

import (
	"github.com/buildcost/estimator/pkg/catalog"
	"github.com/buildcost/estimator/pkg/constants"
)

// Aggregate multiplies quantities and rates into category costs and sums
// them to a total. All intermediate values are carried at full precision;
// only presented numbers are rounded, at the result edge.
func Aggregate(spec ProjectSpecification, q Quantities, cat *catalog.RateCatalog) CostTotals {
	tier, _ := catalog.ParseQualityTier(spec.MaterialQuality)

	materialCost := 0.0
	for _, line := range materialQuantities(q) {
		if rate, ok := cat.MaterialRateFor(spec.Location, line.name); ok {
			materialCost += line.quantity * rate.RateFor(tier)
		}
	}

	city, _ := cat.City(spec.Location)
	laborCost := spec.TotalAreaSqft * city.LaborRatePerSqft * float64(spec.FloorCount)
	equipmentCost := laborCost * constants.EquipmentPctOfLabor

	finishesCost := 0.0
	if spec.FinishesIncluded {
		finishesCost = spec.TotalAreaSqft * cat.FinishRate(spec.FinishesQuality) * float64(spec.FloorCount)
	}

	subtotal := materialCost + laborCost + equipmentCost + finishesCost
	otherCosts := subtotal * constants.OtherCostsPctOfSubtotal

	return CostTotals{
		MaterialCost:  materialCost,
		LaborCost:     laborCost,
		EquipmentCost: equipmentCost,
		FinishesCost:  finishesCost,
		Subtotal:      subtotal,
		OtherCosts:    otherCosts,
		TotalCost:     subtotal + otherCosts,
	}
}

type materialQuantity struct {
	name     string
	quantity float64
}

// materialQuantities pairs each catalog material with its taken-off
// quantity, in presentation order.
func materialQuantities(q Quantities) []materialQuantity {
	return []materialQuantity{
		{catalog.MaterialCement, q.CementBags},
		{catalog.MaterialSteel, q.SteelKg},
		{catalog.MaterialBricks, q.BricksCount},
		{catalog.MaterialSand, q.SandCft},
		{catalog.MaterialCrush, q.CrushCft},
	}
}
