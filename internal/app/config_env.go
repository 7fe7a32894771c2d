package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.InputDir == "" || cfg.InputDir == DefaultInputDir {
		if v := strings.TrimSpace(os.Getenv("DEGREES_INPUT_DIR")); v != "" {
			cfg.InputDir = v
		}
	}
	if cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath {
		if v := strings.TrimSpace(os.Getenv("DEGREES_OUTPUT")); v != "" {
			cfg.OutputPath = v
		}
	}
	if cfg.OutputPDFPath == "" {
		cfg.OutputPDFPath = strings.TrimSpace(os.Getenv("DEGREES_OUTPUT_PDF"))
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = strings.TrimSpace(os.Getenv("DEGREES_SCHEMA"))
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = splitList(os.Getenv("DEGREES_EXTENSIONS"))
	}
	if cfg.Workers == 0 || cfg.Workers == DefaultWorkers {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("DEGREES_WORKERS"))); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Manifest, "DEGREES_MANIFEST")
	setBool(&cfg.Verbose, "VERBOSE")
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
