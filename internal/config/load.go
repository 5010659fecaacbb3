package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads raw options from a YAML file and validates them. A missing
// file is not an error: it yields the default configuration, matching the
// degrade-don't-fail contract of the rest of this package. An unreadable
// or syntactically broken file IS an error - that is a caller mistake, not
// a recoverable option value.
func Load(path string) (Config, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil, nil
	}
	if err != nil {
		return Config{}, nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg, diags := New(raw)
	return cfg, diags, nil
}
