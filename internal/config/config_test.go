package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildcost/estimator/pkg/catalog"
)

const sampleConfig = `
logging:
  level: debug
  format: console
output:
  format: csv
catalog:
  cities:
    - name: Lahore
      code: LHE
      laborRatePerSqft: 600
      materialBaseRate: 1250
      equipmentRate: 160
  materialRates:
    Lahore:
      - name: Cement
        category: Structure
        unit: bag
        standardRate: 1300
        premiumRate: 1450
        luxuryRate: 1650
  finishRates:
    standard: 500
  qualityFactors:
    premium: 1.12
projects:
  - projectName: Gulshan Residence
    totalAreaSqft: 1000
    location: Karachi
    roomCount: 4
    roomLengthFt: 10
    roomWidthFt: 20
    materialQuality: standard
    finishesIncluded: false
    floorCount: 1
  - projectName: Clifton Duplex
    totalAreaSqft: 2400
    location: Lahore
    roomCount: 6
    roomLengthFt: 12
    roomWidthFt: 14
    materialQuality: premium
    finishesIncluded: true
    finishesQuality: premium
    floorCount: 2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
	if len(conf.Projects) != 2 {
		t.Fatalf("got %d projects, expected 2", len(conf.Projects))
	}

	first := conf.Projects[0]
	if first.ProjectName != "Gulshan Residence" || first.TotalAreaSqft != 1000 || first.RoomCount != 4 {
		t.Errorf("first project decoded incorrectly: %+v", first)
	}

	second := conf.Projects[1]
	if !second.FinishesIncluded || second.FinishesQuality != "premium" || second.FloorCount != 2 {
		t.Errorf("second project decoded incorrectly: %+v", second)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader failed: %v", err)
	}
	if len(conf.Projects) != 2 {
		t.Errorf("got %d projects, expected 2", len(conf.Projects))
	}
}

func TestRateCatalogMerge(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	cat := conf.RateCatalog()

	// Seed cities survive the merge.
	if !cat.HasCity("Karachi") || !cat.HasCity("Sukkur") {
		t.Error("seed cities should survive the merge")
	}

	// The override adds a new city with its own material rates.
	city, ok := cat.City("Lahore")
	if !ok {
		t.Fatal("expected Lahore from the override")
	}
	if city.LaborRatePerSqft != 600 {
		t.Errorf("Lahore labor rate = %v, expected 600", city.LaborRatePerSqft)
	}
	rate, ok := cat.MaterialRateFor("Lahore", catalog.MaterialCement)
	if !ok {
		t.Fatal("expected a cement rate for Lahore")
	}
	if rate.StandardRate != 1300 {
		t.Errorf("Lahore cement rate = %v, expected 1300", rate.StandardRate)
	}

	// Finish rate and quality factor overrides apply per tier.
	if got := cat.FinishRate("standard"); got != 500 {
		t.Errorf("overridden standard finish rate = %v, expected 500", got)
	}
	if got := cat.FinishRate("luxury"); got != 1300 {
		t.Errorf("luxury finish rate = %v, expected seed 1300", got)
	}
	if got := cat.QualityFactor("premium"); got != 1.12 {
		t.Errorf("overridden premium factor = %v, expected 1.12", got)
	}
	if got := cat.QualityFactor("luxury"); got != 1.20 {
		t.Errorf("luxury factor = %v, expected seed 1.20", got)
	}
}

func TestRateCatalogCityReplacement(t *testing.T) {
	content := `
catalog:
  cities:
    - name: Karachi
      code: KHI
      laborRatePerSqft: 575
      materialBaseRate: 1200
      equipmentRate: 150
projects: []
`
	conf, err := LoadConfiguration(writeConfig(t, content))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	cat := conf.RateCatalog()
	city, _ := cat.City("Karachi")
	if city.LaborRatePerSqft != 575 {
		t.Errorf("replaced Karachi labor rate = %v, expected 575", city.LaborRatePerSqft)
	}

	count := 0
	for _, c := range cat.Cities {
		if c.Name == "Karachi" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Karachi appears %d times after replacement, expected once", count)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	content := `
catalog:
  finishRates:
    deluxe: 900
  qualityFactors:
    ultra: 1.4
projects: []
`
	conf, err := LoadConfiguration(writeConfig(t, content))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) < 3 {
		t.Fatalf("expected warnings for empty projects and unknown tiers, got %v", warnings)
	}

	joined := strings.Join(warnings, "; ")
	for _, want := range []string{"no projects", "deluxe", "ultra"} {
		if !strings.Contains(joined, want) {
			t.Errorf("warnings %q missing %q", joined, want)
		}
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
