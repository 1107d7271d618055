package estimate

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/buildcost/estimator/pkg/catalog"
	"github.com/buildcost/estimator/pkg/mathutil"
)

// Illustrative sub-allocation rates used for informational line items. These
// lines are presentation detail, not cost drivers; none of them sums into
// the category aggregates or the total.
const (
	masonryDaysPerSqft     = 1.0 / 100.0
	masonryRatePerDay      = 2500.0
	carpentryRatePerRoom   = 45000.0
	electricianDaysPerSqft = 1.0 / 150.0
	electricalRatePerDay   = 2200.0
	plumbingRatePerRoom    = 35000.0

	mixerRentalFee       = 45000.0
	scaffoldingRentalFee = 24000.0
	powerToolsRentalFee  = 45000.0
	safetyEquipmentFee   = 15000.0

	flooringShareOfFinishRate = 0.4
	paintingShareOfFinishRate = 0.3
	paintedWallSqftPerSqft    = 3.5
	tilesShareOfFinishRate    = 0.5
	tileSqftPerRoom           = 80.0
	ceilingShareOfFinishRate  = 0.3

	managementShareOfOther = 0.4
	transportationFee      = 25000.0
	permitsFee             = 35000.0
	contingencyPctOfTotal  = 5.0
	roomAdditionRate       = 60000.0
)

// BuildBreakdown expands the aggregates into ordered per-category line
// items. Within each category the additive lines round independently and
// then reconcile against the rounded aggregate, with any remainder folded
// into the last additive line, so displayed subtotals always match the
// aggregates exactly. It may be called on its own to re-render a breakdown
// for a stored result, given the same specification and catalog snapshot.
func BuildBreakdown(spec ProjectSpecification, q Quantities, totals CostTotals, cat *catalog.RateCatalog) Breakdown {
	spec = spec.withDefaults()
	p := message.NewPrinter(language.English)

	b := Breakdown{
		CategoryMaterials:     materialLines(p, spec, q, totals, cat),
		CategoryLabor:         laborLines(p, spec, totals, cat),
		CategoryEquipment:     equipmentLines(p, totals),
		CategoryMiscellaneous: miscellaneousLines(p, spec, totals),
	}
	if spec.FinishesIncluded {
		b[CategoryFinishes] = finishesLines(p, spec, totals, cat)
	}
	return b
}

func materialLines(p *message.Printer, spec ProjectSpecification, q Quantities, totals CostTotals, cat *catalog.RateCatalog) []LineItem {
	tier, _ := catalog.ParseQualityTier(spec.MaterialQuality)

	var items []LineItem
	for _, mq := range materialQuantities(q) {
		rate, ok := cat.MaterialRateFor(spec.Location, mq.name)
		if !ok {
			continue
		}
		unitRate := rate.RateFor(tier)
		items = append(items, LineItem{
			Description:     mq.name,
			QuantityDisplay: p.Sprintf("%.0f %s", mq.quantity, rate.Unit),
			RateDisplay:     p.Sprintf("PKR %.0f/%s", unitRate, rate.Unit),
			Amount:          mathutil.RoundCurrency(mq.quantity * unitRate),
		})
	}
	return reconcile(items, totals.MaterialCost)
}

func laborLines(p *message.Printer, spec ProjectSpecification, totals CostTotals, cat *catalog.RateCatalog) []LineItem {
	city, _ := cat.City(spec.Location)
	effectiveArea := spec.EffectiveArea()

	items := []LineItem{
		{
			Description:     "Construction Labor",
			QuantityDisplay: p.Sprintf("%.0f sq.ft × %d floor(s)", spec.TotalAreaSqft, spec.FloorCount),
			RateDisplay:     p.Sprintf("PKR %.0f/sq.ft", city.LaborRatePerSqft),
			Amount:          mathutil.RoundCurrency(totals.LaborCost),
		},
		{
			Description:     "Masonry Work",
			QuantityDisplay: p.Sprintf("%.0f mason-days", effectiveArea*masonryDaysPerSqft),
			RateDisplay:     p.Sprintf("PKR %.0f/day", masonryRatePerDay),
			Amount:          mathutil.RoundCurrency(effectiveArea * masonryDaysPerSqft * masonryRatePerDay),
			Informational:   true,
		},
		{
			Description:     "Carpentry Work",
			QuantityDisplay: fmt.Sprintf("%d room(s)", spec.RoomCount),
			RateDisplay:     p.Sprintf("PKR %.0f/room", carpentryRatePerRoom),
			Amount:          mathutil.RoundCurrency(float64(spec.RoomCount) * carpentryRatePerRoom),
			Informational:   true,
		},
		{
			Description:     "Electrical Work",
			QuantityDisplay: p.Sprintf("%.0f electrician-days", effectiveArea*electricianDaysPerSqft),
			RateDisplay:     p.Sprintf("PKR %.0f/day", electricalRatePerDay),
			Amount:          mathutil.RoundCurrency(effectiveArea * electricianDaysPerSqft * electricalRatePerDay),
			Informational:   true,
		},
		{
			Description:     "Plumbing Work",
			QuantityDisplay: fmt.Sprintf("%d room(s)", spec.RoomCount),
			RateDisplay:     p.Sprintf("PKR %.0f/room", plumbingRatePerRoom),
			Amount:          mathutil.RoundCurrency(float64(spec.RoomCount) * plumbingRatePerRoom),
			Informational:   true,
		},
	}
	return reconcile(items, totals.LaborCost)
}

func equipmentLines(p *message.Printer, totals CostTotals) []LineItem {
	items := []LineItem{
		{
			Description:     "Equipment Rental",
			QuantityDisplay: "Project duration",
			RateDisplay:     "18% of labor cost",
			Amount:          mathutil.RoundCurrency(totals.EquipmentCost),
		},
		{
			Description:     "Concrete Mixer",
			QuantityDisplay: "15 days",
			RateDisplay:     p.Sprintf("PKR %.0f/day", 3000.0),
			Amount:          mixerRentalFee,
			Informational:   true,
		},
		{
			Description:     "Scaffolding",
			QuantityDisplay: "30 days",
			RateDisplay:     p.Sprintf("PKR %.0f/day", 800.0),
			Amount:          scaffoldingRentalFee,
			Informational:   true,
		},
		{
			Description:     "Power Tools",
			QuantityDisplay: "45 days",
			RateDisplay:     p.Sprintf("PKR %.0f/day", 1000.0),
			Amount:          powerToolsRentalFee,
			Informational:   true,
		},
		{
			Description:     "Safety Equipment",
			QuantityDisplay: "Lump sum",
			RateDisplay:     "N/A",
			Amount:          safetyEquipmentFee,
			Informational:   true,
		},
	}
	return reconcile(items, totals.EquipmentCost)
}

func finishesLines(p *message.Printer, spec ProjectSpecification, totals CostTotals, cat *catalog.RateCatalog) []LineItem {
	finishRate := cat.FinishRate(spec.FinishesQuality)
	effectiveArea := spec.EffectiveArea()

	items := []LineItem{
		{
			Description:     "Interior Finishes",
			QuantityDisplay: p.Sprintf("%.0f sq.ft × %d floor(s)", spec.TotalAreaSqft, spec.FloorCount),
			RateDisplay:     p.Sprintf("PKR %.0f/sq.ft", finishRate),
			Amount:          mathutil.RoundCurrency(totals.FinishesCost),
		},
		{
			Description:     "Flooring",
			QuantityDisplay: p.Sprintf("%.0f sq.ft", effectiveArea),
			RateDisplay:     p.Sprintf("PKR %.0f/sq.ft", finishRate*flooringShareOfFinishRate),
			Amount:          mathutil.RoundCurrency(effectiveArea * finishRate * flooringShareOfFinishRate),
			Informational:   true,
		},
		{
			Description:     "Painting",
			QuantityDisplay: p.Sprintf("%.0f sq.ft (walls)", effectiveArea*paintedWallSqftPerSqft),
			RateDisplay:     p.Sprintf("PKR %.0f/sq.ft", finishRate*paintingShareOfFinishRate),
			Amount:          mathutil.RoundCurrency(effectiveArea * paintedWallSqftPerSqft * finishRate * paintingShareOfFinishRate),
			Informational:   true,
		},
		{
			Description:     "Bathroom Tiles",
			QuantityDisplay: p.Sprintf("%.0f sq.ft", float64(spec.RoomCount)*tileSqftPerRoom),
			RateDisplay:     p.Sprintf("PKR %.0f/sq.ft", finishRate*tilesShareOfFinishRate),
			Amount:          mathutil.RoundCurrency(float64(spec.RoomCount) * tileSqftPerRoom * finishRate * tilesShareOfFinishRate),
			Informational:   true,
		},
		{
			Description:     "False Ceiling",
			QuantityDisplay: p.Sprintf("%.0f sq.ft", effectiveArea),
			RateDisplay:     p.Sprintf("PKR %.0f/sq.ft", finishRate*ceilingShareOfFinishRate),
			Amount:          mathutil.RoundCurrency(effectiveArea * finishRate * ceilingShareOfFinishRate),
			Informational:   true,
		},
	}
	return reconcile(items, totals.FinishesCost)
}

func miscellaneousLines(p *message.Printer, spec ProjectSpecification, totals CostTotals) []LineItem {
	items := []LineItem{
		{
			Description:     "Overheads & Miscellaneous",
			QuantityDisplay: "12% of subtotal",
			RateDisplay:     "N/A",
			Amount:          mathutil.RoundCurrency(totals.OtherCosts),
		},
		{
			Description:     "Project Management",
			QuantityDisplay: "Full project",
			RateDisplay:     "N/A",
			Amount:          mathutil.RoundCurrency(totals.OtherCosts * managementShareOfOther),
			Informational:   true,
		},
		{
			Description:     "Transportation",
			QuantityDisplay: "1 month",
			RateDisplay:     p.Sprintf("PKR %.0f/month", transportationFee),
			Amount:          transportationFee,
			Informational:   true,
		},
		{
			Description:     "Permits & Legal Fees",
			QuantityDisplay: "Lump sum",
			RateDisplay:     "N/A",
			Amount:          permitsFee,
			Informational:   true,
		},
		{
			Description:     "Contingency",
			QuantityDisplay: "5% of total",
			RateDisplay:     "N/A",
			Amount:          mathutil.RoundCurrency(mathutil.ApplyPercentage(totals.TotalCost, contingencyPctOfTotal)),
			Informational:   true,
		},
		{
			// Context about room-driven cost pressure. The authoritative
			// total deliberately excludes this term.
			Description:     "Room Addition Cost",
			QuantityDisplay: fmt.Sprintf("%d room(s)", spec.RoomCount),
			RateDisplay:     p.Sprintf("PKR %.0f/room", roomAdditionRate),
			Amount:          mathutil.RoundCurrency(float64(spec.RoomCount) * roomAdditionRate),
			Informational:   true,
		},
	}
	return reconcile(items, totals.OtherCosts)
}

// reconcile folds any rounding remainder between the additive line amounts
// and the rounded category aggregate into the last additive line, so the
// displayed category subtotal always matches the aggregate exactly.
// Informational lines are excluded from the sum.
func reconcile(items []LineItem, aggregate float64) []LineItem {
	target := mathutil.RoundCurrency(aggregate)
	sum := 0.0
	lastAdditive := -1
	for i, item := range items {
		if item.Informational {
			continue
		}
		sum += item.Amount
		lastAdditive = i
	}
	if lastAdditive >= 0 && sum != target {
		items[lastAdditive].Amount += target - sum
	}
	return items
}

// AdditiveSum returns the sum of a category's additive line amounts.
func AdditiveSum(items []LineItem) float64 {
	sum := 0.0
	for _, item := range items {
		if !item.Informational {
			sum += item.Amount
		}
	}
	return sum
}
