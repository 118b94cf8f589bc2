package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CollectionSpec maps one logical collection onto a database table and the
// columns every operation relies on. It replaces the header-position probing
// the spreadsheets used to do: the mapping is static and checked once at
// startup, so a missing column fails fast instead of misaligning data.
type CollectionSpec struct {
	Table   string   `yaml:"table"`
	Columns []string `yaml:"columns"`
}

type SchemaSpec struct {
	Collections map[string]CollectionSpec `yaml:"collections"`
}

// Collections every deployment must map.
var requiredCollections = []string{
	"work",
	"pending",
	"approved",
	"rejected",
	"message_log",
	"workers",
	"payroll",
}

func LoadSchema(path string) (*SchemaSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var spec SchemaSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse schema file %s: %w", path, err)
	}

	for _, name := range requiredCollections {
		coll, ok := spec.Collections[name]
		if !ok {
			return nil, fmt.Errorf("schema file %s: collection %q is not mapped", path, name)
		}
		if coll.Table == "" {
			return nil, fmt.Errorf("schema file %s: collection %q has no table", path, name)
		}
		if len(coll.Columns) == 0 {
			return nil, fmt.Errorf("schema file %s: collection %q lists no columns", path, name)
		}
	}

	return &spec, nil
}
