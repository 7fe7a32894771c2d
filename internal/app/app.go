package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/degreeextract/internal/record"
	"github.com/hyperifyio/degreeextract/internal/schema"
)

type App struct {
	cfg    Config
	schema *schema.Schema
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	s := schema.Default()
	if cfg.SchemaPath != "" {
		loaded, err := schema.LoadFile(cfg.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("load schema: %w", err)
		}
		s = loaded
	}
	for _, c := range s.Conflicts() {
		log.Warn().Str("heading", c.Heading).Str("kept", c.Kept).Str("dropped", c.Dropped).Msg("heading declared by two fields")
	}
	log.Debug().Int("fields", len(s.IDs())).Str("schema", schemaLabel(cfg.SchemaPath)).Msg("schema ready")
	return &App{cfg: cfg, schema: s}, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run processes the whole input directory and writes the collection. It either
// succeeds for every document or returns the first error.
func (a *App) Run(ctx context.Context) error {
	started := time.Now()
	results, err := a.processDir(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		log.Warn().Str("dir", a.cfg.InputDir).Msg("no input documents; writing empty collection")
	}

	records := make([]record.Record, len(results))
	for i, r := range results {
		records[i] = r.Record
	}

	data, err := encodeCollection(records)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := validateCollection(a.schema, data); err != nil {
		return err
	}
	if err := writeCollection(a.cfg.OutputPath, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Int("count", len(records)).Str("out", a.cfg.OutputPath).Dur("took", time.Since(started)).Msg("wrote degree collection")

	if a.cfg.OutputPDFPath != "" {
		if err := writeCatalogPDF(a.schema, records, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("pdf", a.cfg.OutputPDFPath).Msg("wrote PDF catalogue")
	}

	if a.cfg.Manifest {
		meta := manifestMeta{
			Version:       BuildVersion,
			Commit:        BuildCommit,
			BuildDate:     BuildDate,
			Schema:        schemaLabel(a.cfg.SchemaPath),
			Fields:        len(a.schema.IDs()),
			DocumentCount: len(results),
			Workers:       a.workers(),
			GeneratedAt:   time.Now().UTC(),
		}
		payload, err := marshalManifestJSON(meta, buildManifestEntries(results))
		if err != nil {
			return fmt.Errorf("encode manifest: %w", err)
		}
		path := deriveManifestSidecarPath(a.cfg.OutputPath)
		if err := writeFileAtomic(path, payload); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		log.Info().Str("manifest", path).Msg("wrote manifest sidecar")
	}
	return nil
}

func (a *App) workers() int {
	if a.cfg.Workers < 1 {
		return DefaultWorkers
	}
	return a.cfg.Workers
}

func schemaLabel(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
