package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/degreeextract/internal/corpus"
	"github.com/hyperifyio/degreeextract/internal/heading"
	"github.com/hyperifyio/degreeextract/internal/record"
	"github.com/hyperifyio/degreeextract/internal/schema"
)

// docResult is one processed document together with what the manifest needs.
type docResult struct {
	Document corpus.Document
	Headings int
	Record   record.Record
}

// processDocument runs the heading matcher and the record builder over one
// document. It depends on nothing but its arguments.
func processDocument(d corpus.Document, s *schema.Schema) docResult {
	matches := heading.Locate(d.Text, s)
	for _, f := range heading.Duplicates(matches) {
		log.Debug().Str("doc", d.ID).Str("field", f).Msg("heading repeated; last section wins")
	}
	rec := record.Build(d.Text, matches, s)
	log.Debug().Str("doc", d.ID).Int("headings", len(matches)).Str("slug", rec.Slug()).Str("level", rec.Level()).Msg("built record")
	return docResult{Document: d, Headings: len(matches), Record: rec}
}

// processDir reads and processes every input document. Up to a.workers()
// documents are in flight; results keep the listing order regardless.
func (a *App) processDir(ctx context.Context) ([]docResult, error) {
	names, err := corpus.List(a.cfg.InputDir, a.cfg.Extensions)
	if err != nil {
		return nil, err
	}
	results := make([]docResult, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := corpus.ReadDocument(filepath.Join(a.cfg.InputDir, name))
			if err != nil {
				return err
			}
			results[i] = processDocument(d, a.schema)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
