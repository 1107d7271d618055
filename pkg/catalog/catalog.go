// Package catalog defines the reference rate data consumed by the estimation
// engine: per-city labor rates and per-city, per-tier material rates. A
// RateCatalog is plain data supplied by the caller (typically loaded from
// configuration) and is read-only for the lifetime of a calculation, so it
// may be shared across concurrent calculations without synchronization.
package catalog

import "strings"

// Material names recognized by the take-off formulas.
const (
	MaterialCement = "Cement"
	MaterialSteel  = "Steel"
	MaterialBricks = "Bricks"
	MaterialSand   = "Sand"
	MaterialCrush  = "Crush"
)

// CityRate holds the per-city base rates. MaterialBaseRate and EquipmentRate
// are carried for extensibility; the current cost model derives equipment
// cost from labor cost rather than from EquipmentRate.
type CityRate struct {
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	LaborRatePerSqft float64 `json:"labor_rate_per_sqft"`
	MaterialBaseRate float64 `json:"material_base_rate"`
	EquipmentRate    float64 `json:"equipment_rate"`
}

// MaterialRate holds the per-unit price of one material at each quality tier.
type MaterialRate struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	StandardRate float64 `json:"standard_rate"`
	PremiumRate  float64 `json:"premium_rate"`
	LuxuryRate   float64 `json:"luxury_rate"`
}

// RateFor selects the per-unit rate for a quality tier. Unrecognized tiers
// price at the standard rate, mirroring the quantity-factor leniency.
func (m MaterialRate) RateFor(tier QualityTier) float64 {
	switch tier {
	case QualityPremium:
		return m.PremiumRate
	case QualityLuxury:
		return m.LuxuryRate
	default:
		return m.StandardRate
	}
}

// RateCatalog holds all reference rates for the estimation engine.
type RateCatalog struct {
	// DefaultCity names the city whose material rates apply when a city has
	// no explicit rate set. It must itself carry a rate set.
	DefaultCity string

	Cities []CityRate

	// MaterialRates maps city name to that city's material rate set.
	MaterialRates map[string][]MaterialRate

	// FinishRates maps quality tier to the finish rate per square foot.
	FinishRates map[QualityTier]float64

	// QualityFactors optionally overrides the built-in quantity multipliers
	// per tier.
	QualityFactors map[QualityTier]float64
}

// City looks up a city by name, case-insensitively.
func (c *RateCatalog) City(name string) (CityRate, bool) {
	for _, city := range c.Cities {
		if strings.EqualFold(city.Name, name) {
			return city, true
		}
	}
	return CityRate{}, false
}

// HasCity reports whether a city is present in the catalog.
func (c *RateCatalog) HasCity(name string) bool {
	_, ok := c.City(name)
	return ok
}

// MaterialRatesFor returns the material rate set for a city. Cities without
// an explicit set fall back to the default city's rates; the engine never
// prices materials at zero for a known city.
func (c *RateCatalog) MaterialRatesFor(city string) []MaterialRate {
	for name, rates := range c.MaterialRates {
		if strings.EqualFold(name, city) {
			return rates
		}
	}
	return c.MaterialRates[c.DefaultCity]
}

// MaterialRateFor looks up one material's rate entry within a city's rate
// set, applying the default-city fallback.
func (c *RateCatalog) MaterialRateFor(city, material string) (MaterialRate, bool) {
	for _, rate := range c.MaterialRatesFor(city) {
		if strings.EqualFold(rate.Name, material) {
			return rate, true
		}
	}
	return MaterialRate{}, false
}

// QualityFactor resolves the quantity multiplier for a raw quality label.
// Labels that do not parse to a recognized tier resolve to 1.00.
func (c *RateCatalog) QualityFactor(label string) float64 {
	tier, ok := ParseQualityTier(label)
	if !ok {
		return QualityTier(label).factor()
	}
	if override, present := c.QualityFactors[tier]; present {
		return override
	}
	return tier.factor()
}

// FinishRate resolves the finish rate per square foot for a raw quality
// label, defaulting to the standard tier's rate for unrecognized labels.
func (c *RateCatalog) FinishRate(label string) float64 {
	tier, _ := ParseQualityTier(label)
	if rate, present := c.FinishRates[tier]; present {
		return rate
	}
	return defaultFinishRates[tier]
}

var defaultFinishRates = map[QualityTier]float64{
	QualityStandard: 450,
	QualityPremium:  750,
	QualityLuxury:   1300,
}

// Default returns the built-in seed catalog. Callers normally layer
// configuration overrides on top of it; the seed keeps the engine usable
// with no configuration at all.
func Default() *RateCatalog {
	return &RateCatalog{
		DefaultCity: "Karachi",
		Cities: []CityRate{
			{Name: "Karachi", Code: "KHI", LaborRatePerSqft: 550, MaterialBaseRate: 1200, EquipmentRate: 150},
			{Name: "Hyderabad", Code: "HYD", LaborRatePerSqft: 450, MaterialBaseRate: 1100, EquipmentRate: 135},
			{Name: "Sukkur", Code: "SKR", LaborRatePerSqft: 400, MaterialBaseRate: 1050, EquipmentRate: 125},
		},
		MaterialRates: map[string][]MaterialRate{
			"Karachi": {
				{Name: MaterialCement, Category: "Structure", Unit: "bag", StandardRate: 1250, PremiumRate: 1400, LuxuryRate: 1600},
				{Name: MaterialSteel, Category: "Structure", Unit: "kg", StandardRate: 280, PremiumRate: 310, LuxuryRate: 350},
				{Name: MaterialBricks, Category: "Structure", Unit: "pcs", StandardRate: 14, PremiumRate: 16, LuxuryRate: 19},
				{Name: MaterialSand, Category: "Aggregate", Unit: "cft", StandardRate: 120, PremiumRate: 135, LuxuryRate: 155},
				{Name: MaterialCrush, Category: "Aggregate", Unit: "cft", StandardRate: 140, PremiumRate: 155, LuxuryRate: 180},
			},
			"Hyderabad": {
				{Name: MaterialCement, Category: "Structure", Unit: "bag", StandardRate: 1150, PremiumRate: 1300, LuxuryRate: 1500},
				{Name: MaterialSteel, Category: "Structure", Unit: "kg", StandardRate: 260, PremiumRate: 290, LuxuryRate: 325},
				{Name: MaterialBricks, Category: "Structure", Unit: "pcs", StandardRate: 12, PremiumRate: 14, LuxuryRate: 16},
				{Name: MaterialSand, Category: "Aggregate", Unit: "cft", StandardRate: 105, PremiumRate: 120, LuxuryRate: 135},
				{Name: MaterialCrush, Category: "Aggregate", Unit: "cft", StandardRate: 125, PremiumRate: 140, LuxuryRate: 160},
			},
			"Sukkur": {
				{Name: MaterialCement, Category: "Structure", Unit: "bag", StandardRate: 1100, PremiumRate: 1250, LuxuryRate: 1450},
				{Name: MaterialSteel, Category: "Structure", Unit: "kg", StandardRate: 250, PremiumRate: 280, LuxuryRate: 315},
				{Name: MaterialBricks, Category: "Structure", Unit: "pcs", StandardRate: 11, PremiumRate: 13, LuxuryRate: 15},
				{Name: MaterialSand, Category: "Aggregate", Unit: "cft", StandardRate: 100, PremiumRate: 115, LuxuryRate: 130},
				{Name: MaterialCrush, Category: "Aggregate", Unit: "cft", StandardRate: 120, PremiumRate: 135, LuxuryRate: 155},
			},
		},
		FinishRates: map[QualityTier]float64{
			QualityStandard: 450,
			QualityPremium:  750,
			QualityLuxury:   1300,
		},
	}
}
