package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FormDefaults centralizes the default values the admin forms fall back to
// when a field is left blank. They live in one place so the values are not
// scattered across handlers.
type FormDefaults struct {
	EventLocation    string `yaml:"event_location"`
	EventType        string `yaml:"event_type"`
	BusinessCategory string `yaml:"business_category"`
	SponsorLevel     string `yaml:"sponsor_level"`
}

// builtinFormDefaults are used when no defaults file is configured or a field
// is absent from the file.
var builtinFormDefaults = FormDefaults{
	EventLocation:    "Downtown Main Street",
	EventType:        "other",
	BusinessCategory: "retail",
	SponsorLevel:     "Supporting",
}

// LoadFormDefaults reads form defaults from a YAML file. An empty path or a
// missing file yields the builtin defaults; fields missing from the file keep
// their builtin values.
func LoadFormDefaults(path string) (FormDefaults, error) {
	defaults := builtinFormDefaults
	if path == "" {
		return defaults, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("read form defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return builtinFormDefaults, fmt.Errorf("parse form defaults: %w", err)
	}
	if defaults.EventLocation == "" {
		defaults.EventLocation = builtinFormDefaults.EventLocation
	}
	if defaults.EventType == "" {
		defaults.EventType = builtinFormDefaults.EventType
	}
	if defaults.BusinessCategory == "" {
		defaults.BusinessCategory = builtinFormDefaults.BusinessCategory
	}
	if defaults.SponsorLevel == "" {
		defaults.SponsorLevel = builtinFormDefaults.SponsorLevel
	}
	return defaults, nil
}
