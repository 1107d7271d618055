package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		kind      Kind
		field     string
		substring string
	}{
		{"Missing field", MissingField("project_name"), KindMissingField, "project_name", "project_name"},
		{"Invalid value", InvalidValue("total_area_sqft", "must be greater than 0"), KindInvalidValue, "total_area_sqft", "greater than 0"},
		{"Unknown location", UnknownLocation("Atlantis"), KindUnknownLocation, "location", "Atlantis"},
		{"Room area rejection", RoomAreaExceedsProjectArea(1125, 1000), KindRoomAreaExceedsProjectArea, "room_count", "1125"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, expected %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Field != tt.field {
				t.Errorf("Field = %q, expected %q", tt.err.Field, tt.field)
			}
			if !strings.Contains(tt.err.Error(), tt.substring) {
				t.Errorf("Error() = %q, expected to contain %q", tt.err.Error(), tt.substring)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = RoomAreaExceedsProjectArea(1125, 1000)

	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatal("errors.As should recover *validation.Error")
	}
	if vErr.Kind != KindRoomAreaExceedsProjectArea {
		t.Errorf("recovered Kind = %v, expected %v", vErr.Kind, KindRoomAreaExceedsProjectArea)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Pretty", "pretty", false},
		{"CSV", "csv", false},
		{"Unknown", "xml", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}
