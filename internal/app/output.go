package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hyperifyio/degreeextract/internal/record"
	"github.com/hyperifyio/degreeextract/internal/schema"
)

// jsModulePrefix wraps the collection when the output is a JavaScript module.
const jsModulePrefix = "export const degreesData = "

// encodeCollection renders records as an indented JSON array. HTML characters
// are left unescaped.
func encodeCollection(records []record.Record) ([]byte, error) {
	if records == nil {
		records = []record.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeCollection stores the JSON array at path, wrapped as an ES module when
// path ends in .js.
func writeCollection(path string, data []byte) error {
	var out []byte
	if strings.EqualFold(filepath.Ext(path), ".js") {
		out = append([]byte(jsModulePrefix), data...)
		out = append(out, ";\n"...)
	} else {
		out = append(append([]byte{}, data...), '\n')
	}
	return writeFileAtomic(path, out)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// collectionSchema describes the artifact the front end consumes: an array of
// objects carrying exactly the canonical fields plus slug and level, all strings.
func collectionSchema(s *schema.Schema) map[string]any {
	props := make(map[string]any)
	required := make([]string, 0, len(s.IDs())+2)
	for _, id := range s.IDs() {
		props[id] = map[string]any{"type": "string"}
		required = append(required, id)
	}
	props[record.SlugKey] = map[string]any{
		"type":    "string",
		"pattern": "^([a-z0-9]+(-[a-z0-9]+)*)?$",
	}
	props[record.LevelKey] = map[string]any{
		"type": "string",
		"enum": []string{record.LevelBA, record.LevelMA, record.LevelHND, record.LevelCertificate, record.LevelDegree},
	}
	required = append(required, record.SlugKey, record.LevelKey)
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "array",
		"items": map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

// validateCollection checks encoded collection data against collectionSchema.
func validateCollection(s *schema.Schema, data []byte) error {
	raw, err := json.Marshal(collectionSchema(s))
	if err != nil {
		return fmt.Errorf("encode collection schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("degrees.schema.json", bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("load collection schema: %w", err)
	}
	compiled, err := compiler.Compile("degrees.schema.json")
	if err != nil {
		return fmt.Errorf("compile collection schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode collection for validation: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("collection does not match schema: %w", err)
	}
	return nil
}
