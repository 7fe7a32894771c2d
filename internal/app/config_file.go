package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Flag defaults. ApplyFileConfig treats a field still holding its default as
// unset.
const (
	DefaultInputDir   = "content"
	DefaultOutputPath = "degrees.json"
	DefaultWorkers    = 1
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`
	Schema    string `yaml:"schema" json:"schema"`

	Extensions []string `yaml:"extensions" json:"extensions"`
	Workers    int      `yaml:"workers" json:"workers"`
	Manifest   bool     `yaml:"manifest" json:"manifest"`
	Verbose    bool     `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc onto cfg wherever cfg is unset or
// still at its flag default, so explicit flags win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputDir == "" || cfg.InputDir == DefaultInputDir) && fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}
	if cfg.SchemaPath == "" && fc.Schema != "" {
		cfg.SchemaPath = fc.Schema
	}
	if len(cfg.Extensions) == 0 && len(fc.Extensions) > 0 {
		cfg.Extensions = append([]string{}, fc.Extensions...)
	}
	if (cfg.Workers == 0 || cfg.Workers == DefaultWorkers) && fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if !cfg.Manifest && fc.Manifest {
		cfg.Manifest = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks the settings a run cannot do without.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputDir) == "" {
		return errors.New("config: input directory is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if cfg.Workers < 0 {
		return errors.New("config: workers must not be negative")
	}
	return nil
}
