// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/buildcost/estimator/pkg/catalog"
	"github.com/buildcost/estimator/pkg/estimate"
)

// Configuration holds all configuration for the estimator: runtime options
// plus the rate catalog overrides and the projects to estimate.
type Configuration struct {
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
	Catalog  CatalogConfig `yaml:"catalog,omitempty"`
	Projects []estimate.ProjectSpecification
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// CatalogConfig carries rate catalog overrides. Anything left unset falls
// through to the built-in seed catalog, so catalogs can be updated without
// redeploying the calculation logic.
type CatalogConfig struct {
	DefaultCity    string
	Cities         []catalog.CityRate
	MaterialRates  map[string][]catalog.MaterialRate
	FinishRates    map[string]float64
	QualityFactors map[string]float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// RateCatalog materializes the effective rate catalog: the built-in seed
// data with this configuration's overrides layered on top.
func (c *Configuration) RateCatalog() *catalog.RateCatalog {
	cat := catalog.Default()
	overrides := c.Catalog

	if overrides.DefaultCity != "" {
		cat.DefaultCity = overrides.DefaultCity
	}

	for _, city := range overrides.Cities {
		replaced := false
		for i := range cat.Cities {
			if strings.EqualFold(cat.Cities[i].Name, city.Name) {
				cat.Cities[i] = city
				replaced = true
				break
			}
		}
		if !replaced {
			cat.Cities = append(cat.Cities, city)
		}
	}

	for name, rates := range overrides.MaterialRates {
		cat.MaterialRates[name] = rates
	}

	for label, rate := range overrides.FinishRates {
		if tier, ok := catalog.ParseQualityTier(label); ok {
			cat.FinishRates[tier] = rate
		}
	}

	for label, factor := range overrides.QualityFactors {
		if tier, ok := catalog.ParseQualityTier(label); ok {
			if cat.QualityFactors == nil {
				cat.QualityFactors = make(map[catalog.QualityTier]float64)
			}
			cat.QualityFactors[tier] = factor
		}
	}

	return cat
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard validation of each project happens in the engine;
// these warnings flag configuration oddities worth surfacing before a run.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Projects) == 0 {
		warnings = append(warnings, "configuration contains no projects to estimate")
	}

	for label := range c.Catalog.FinishRates {
		if _, ok := catalog.ParseQualityTier(label); !ok {
			warnings = append(warnings, fmt.Sprintf("finish rate for unrecognized quality tier %q is ignored", label))
		}
	}
	for label := range c.Catalog.QualityFactors {
		if _, ok := catalog.ParseQualityTier(label); !ok {
			warnings = append(warnings, fmt.Sprintf("quality factor for unrecognized tier %q is ignored", label))
		}
	}

	cat := c.RateCatalog()
	if _, ok := cat.City(cat.DefaultCity); !ok {
		warnings = append(warnings, fmt.Sprintf("default city %q is not present in the catalog", cat.DefaultCity))
	}
	if len(cat.MaterialRatesFor(cat.DefaultCity)) == 0 {
		warnings = append(warnings, fmt.Sprintf("default city %q carries no material rates; cities without explicit rates will price materials at zero", cat.DefaultCity))
	}

	return warnings
}
