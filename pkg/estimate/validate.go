package estimate

import (
	"fmt"
	"strings"

	"github.com/buildcost/estimator/pkg/catalog"
	"github.com/buildcost/estimator/pkg/mathutil"
	"github.com/buildcost/estimator/pkg/validation"
)

// ValidateSpecification enforces input sanity before any computation runs.
// Checks run in a fixed order: required fields, positive values, catalog
// membership, finishes tier, then the room-area constraint. The first
// failure is returned as a *validation.Error; nil means the specification is
// safe to estimate.
func ValidateSpecification(spec ProjectSpecification, cat *catalog.RateCatalog) error {
	if strings.TrimSpace(spec.ProjectName) == "" {
		return validation.MissingField("project_name")
	}
	if spec.TotalAreaSqft == 0 {
		return validation.MissingField("total_area_sqft")
	}
	if strings.TrimSpace(spec.Location) == "" {
		return validation.MissingField("location")
	}
	if spec.RoomCount == 0 {
		return validation.MissingField("room_count")
	}
	if strings.TrimSpace(spec.MaterialQuality) == "" {
		return validation.MissingField("material_quality")
	}
	if spec.RoomLengthFt == 0 {
		return validation.MissingField("room_length_ft")
	}
	if spec.RoomWidthFt == 0 {
		return validation.MissingField("room_width_ft")
	}

	if spec.TotalAreaSqft < 0 {
		return validation.InvalidValue("total_area_sqft", "must be greater than 0")
	}
	if spec.RoomCount < 0 {
		return validation.InvalidValue("room_count", "must be greater than 0")
	}
	if spec.RoomLengthFt < 0 {
		return validation.InvalidValue("room_length_ft", "must be greater than 0")
	}
	if spec.RoomWidthFt < 0 {
		return validation.InvalidValue("room_width_ft", "must be greater than 0")
	}
	if spec.FloorCount < 0 {
		return validation.InvalidValue("floor_count", "must be greater than 0")
	}

	if !cat.HasCity(spec.Location) {
		return validation.UnknownLocation(spec.Location)
	}

	if spec.FinishesIncluded {
		if _, ok := catalog.ParseQualityTier(spec.FinishesQuality); !ok {
			return validation.MissingField("finishes_quality")
		}
	}

	// An estimate built from a physically impossible room layout is
	// meaningless; reject before spending compute. Equality passes.
	if roomArea := spec.RoomArea(); roomArea > spec.TotalAreaSqft {
		return validation.RoomAreaExceedsProjectArea(roomArea, spec.TotalAreaSqft)
	}

	return nil
}

// Utilization reports the combined room area as a percentage of the project
// area, with a human-readable advisory note. It is informational only and
// must not be confused with the hard room-area rejection; callers surface it
// as a warning to help judge space efficiency.
func Utilization(spec ProjectSpecification) (float64, string) {
	roomArea := spec.RoomArea()
	if roomArea <= 0 || spec.TotalAreaSqft <= 0 {
		return 0, ""
	}
	pct := mathutil.CalculatePercentage(roomArea, spec.TotalAreaSqft)
	note := fmt.Sprintf("room area %.0f sq.ft uses %.1f%% of project area", roomArea, pct)
	return pct, note
}
