package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// manifestEntry ties one source document to the record built from it.
type manifestEntry struct {
	Index    int    `json:"index"`
	Document string `json:"document"`
	SHA256   string `json:"sha256"`
	Chars    int    `json:"chars"`
	Headings int    `json:"headings"`
	Slug     string `json:"slug"`
	Level    string `json:"level"`
}

// manifestMeta captures run details that aid reproducibility.
type manifestMeta struct {
	Version       string    `json:"version"`
	Commit        string    `json:"commit"`
	BuildDate     string    `json:"build_date"`
	Schema        string    `json:"schema"`
	Fields        int       `json:"fields"`
	DocumentCount int       `json:"document_count"`
	Workers       int       `json:"workers"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of b.
func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

func buildManifestEntries(results []docResult) []manifestEntry {
	out := make([]manifestEntry, 0, len(results))
	for i, r := range results {
		out = append(out, manifestEntry{
			Index:    i + 1,
			Document: r.Document.ID,
			SHA256:   computeSHA256Hex(r.Document.Raw),
			Chars:    len([]rune(r.Document.Text)),
			Headings: r.Headings,
			Slug:     r.Record.Slug(),
			Level:    r.Record.Level(),
		})
	}
	return out
}

// marshalManifestJSON encodes the machine-readable sidecar manifest.
func marshalManifestJSON(meta manifestMeta, entries []manifestEntry) ([]byte, error) {
	payload := struct {
		Meta      manifestMeta    `json:"meta"`
		Documents []manifestEntry `json:"documents"`
	}{Meta: meta, Documents: entries}
	return json.MarshalIndent(payload, "", "  ")
}

// deriveManifestSidecarPath returns a sidecar JSON path next to the output.
func deriveManifestSidecarPath(outputPath string) string {
	return outputPath + ".manifest.json"
}
