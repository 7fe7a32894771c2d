package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// File is the on-disk form of an externalized schema.
//
//	fields:
//	  - id: fees
//	    heading: Fees and funding
//	    variants: ["Fees & Funding"]
type File struct {
	Fields []Field `yaml:"fields" json:"fields"`
}

// LoadFile reads a YAML or JSON schema file and validates it with New.
func LoadFile(path string) (*Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var f File
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("parse schema json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("parse schema yaml: %w", err)
		}
	}
	s, err := New(f.Fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
