// Package estimate implements the construction cost estimation engine: the
// quantity take-off, cost aggregation and breakdown rules that turn a
// project specification plus a rate catalog into an itemized bill of
// quantities. Every stage is a pure function of its inputs; the same engine
// serves both the calculation entry point and any display renderer so the
// formulas exist exactly once.
package estimate

// ProjectSpecification is the immutable input to one calculation.
type ProjectSpecification struct {
	ProjectName     string  `json:"project_name"`
	TotalAreaSqft   float64 `json:"total_area_sqft"`
	Location        string  `json:"location"`
	RoomCount       int     `json:"room_count"`
	RoomLengthFt    float64 `json:"room_length_ft"`
	RoomWidthFt     float64 `json:"room_width_ft"`
	MaterialQuality string  `json:"material_quality"`
	FinishesIncluded bool   `json:"finishes_included"`
	FinishesQuality string  `json:"finishes_quality,omitempty"`
	FloorCount      int     `json:"floor_count"`

	// CeilingHeightFt is informational only; it enters no formula.
	CeilingHeightFt float64 `json:"ceiling_height_ft,omitempty"`
}

// withDefaults returns a copy with unset optional fields defaulted. An
// explicitly negative floor count is left for validation to reject.
func (s ProjectSpecification) withDefaults() ProjectSpecification {
	if s.FloorCount == 0 {
		s.FloorCount = 1
	}
	return s
}

// EffectiveArea is the gross area multiplied by the floor count, the base
// unit for the take-off formulas.
func (s ProjectSpecification) EffectiveArea() float64 {
	return s.TotalAreaSqft * float64(s.FloorCount)
}

// RoomArea is the combined floor area of all specified rooms.
func (s ProjectSpecification) RoomArea() float64 {
	return float64(s.RoomCount) * s.RoomLengthFt * s.RoomWidthFt
}

// Quantities holds the physical material quantities derived from a
// specification. Quantities carry full precision; rounding happens only at
// line-item display time.
type Quantities struct {
	CementBags  float64 `json:"cement_bags"`
	SteelKg     float64 `json:"steel_kg"`
	BricksCount float64 `json:"bricks_count"`
	SandCft     float64 `json:"sand_cft"`
	CrushCft    float64 `json:"crush_cft"`
}

// CostTotals holds the category aggregates at full precision.
type CostTotals struct {
	MaterialCost  float64 `json:"material_cost"`
	LaborCost     float64 `json:"labor_cost"`
	EquipmentCost float64 `json:"equipment_cost"`
	FinishesCost  float64 `json:"finishes_cost"`
	Subtotal      float64 `json:"subtotal"`
	OtherCosts    float64 `json:"other_costs"`
	TotalCost     float64 `json:"total_cost"`
}

// LineItem is a single row in a category's breakdown. Informational lines
// are illustrative sub-splits or context (masonry sub-allocation, room
// addition pressure, rental fees); they are never summed into category
// aggregates or the total.
type LineItem struct {
	Description     string  `json:"description"`
	QuantityDisplay string  `json:"quantity_display"`
	RateDisplay     string  `json:"rate_display"`
	Amount          float64 `json:"amount"`
	Informational   bool    `json:"informational,omitempty"`
}

// Breakdown maps category name to that category's ordered line items.
type Breakdown map[string][]LineItem

// Breakdown category names, in presentation order.
const (
	CategoryMaterials     = "Materials"
	CategoryLabor         = "Labor"
	CategoryEquipment     = "Equipment"
	CategoryFinishes      = "Finishes"
	CategoryMiscellaneous = "Miscellaneous"
)

// CategoryOrder returns the canonical category ordering. Renderers skip
// categories absent from a breakdown (Finishes, when not included).
func CategoryOrder() []string {
	return []string{
		CategoryMaterials,
		CategoryLabor,
		CategoryEquipment,
		CategoryFinishes,
		CategoryMiscellaneous,
	}
}

// EstimateResult is the immutable output of one calculation. Monetary fields
// are rounded to whole currency units; the decomposition invariant
// total == materials + labor + equipment + finishes + other holds within one
// unit after independent rounding.
type EstimateResult struct {
	EstimateID  string `json:"estimate_id,omitempty"`
	ProjectName string `json:"project_name"`

	MaterialCost  float64 `json:"material_cost"`
	LaborCost     float64 `json:"labor_cost"`
	EquipmentCost float64 `json:"equipment_cost"`
	FinishesCost  float64 `json:"finishes_cost"`
	OtherCosts    float64 `json:"other_costs"`
	TotalCost     float64 `json:"total_cost"`

	Breakdown Breakdown `json:"breakdown"`

	EstimatedDurationDays int     `json:"estimated_duration_days"`
	AccuracyLevel         string  `json:"accuracy_level"`
	UtilizationPercent    float64 `json:"utilization_percent"`
}
