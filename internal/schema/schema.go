package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel is stored for every canonical field whose section is absent from a
// document.
const Sentinel = "Not specified"

// NameField is the canonical field every schema must carry. Slug and level are
// derived from it.
const NameField = "name"

// Keys of the attributes derived from the name. They follow the canonical
// fields in every record, so no field may use them as its id.
const (
	SlugField  = "slug"
	LevelField = "level"
)

var (
	ErrEmptyField     = errors.New("schema: field id and heading are required")
	ErrDuplicateField = errors.New("schema: duplicate field id")
	ErrMissingName    = errors.New("schema: missing name field")
	ErrReservedField  = errors.New("schema: field id is reserved")
)

// Field is one canonical output attribute together with the heading texts that
// introduce its section in a source document.
type Field struct {
	ID       string   `yaml:"id" json:"id"`
	Heading  string   `yaml:"heading" json:"heading"`
	Variants []string `yaml:"variants,omitempty" json:"variants,omitempty"`
}

// Conflict records a heading string declared by two different fields. The
// field earlier in schema order keeps the heading.
type Conflict struct {
	Heading string
	Kept    string
	Dropped string
}

// Schema is the immutable set of canonical fields used for one run. Build it
// with New, Default or LoadFile and share it freely between goroutines.
type Schema struct {
	fields    []Field
	index     map[string]string
	conflicts []Conflict
}

// New validates fields and precomputes the heading index.
func New(fields []Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]string),
	}
	seen := make(map[string]bool, len(fields))
	hasName := false
	for _, f := range fields {
		f.ID = strings.TrimSpace(f.ID)
		if f.ID == "" || Normalize(f.Heading) == "" {
			return nil, fmt.Errorf("%w (id=%q heading=%q)", ErrEmptyField, f.ID, f.Heading)
		}
		if f.ID == SlugField || f.ID == LevelField {
			return nil, fmt.Errorf("%w: %s", ErrReservedField, f.ID)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.ID)
		}
		seen[f.ID] = true
		if f.ID == NameField {
			hasName = true
		}
		f.Variants = append([]string(nil), f.Variants...)
		s.fields = append(s.fields, f)

		for _, h := range append([]string{f.Heading}, f.Variants...) {
			key := Normalize(h)
			if key == "" {
				continue
			}
			owner, taken := s.index[key]
			if !taken {
				s.index[key] = f.ID
				continue
			}
			if owner != f.ID {
				s.conflicts = append(s.conflicts, Conflict{Heading: h, Kept: owner, Dropped: f.ID})
			}
		}
	}
	if !hasName {
		return nil, ErrMissingName
	}
	return s, nil
}

// MustNew is like New but panics on an invalid field table. It is meant for
// compiled-in tables only.
func MustNew(fields []Field) *Schema {
	s, err := New(fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Normalize maps a heading or a document line to its lookup key.
func Normalize(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// Lookup resolves a document line to the canonical field whose heading it
// spells. The whole trimmed line must match; substrings never do.
func (s *Schema) Lookup(line string) (string, bool) {
	key := Normalize(line)
	if key == "" {
		return "", false
	}
	id, ok := s.index[key]
	return id, ok
}

// Fields returns a copy of the canonical fields in schema order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		f.Variants = append([]string(nil), f.Variants...)
		out[i] = f
	}
	return out
}

// IDs returns the canonical field identifiers in schema order.
func (s *Schema) IDs() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.ID
	}
	return out
}

// Heading returns the primary heading of the field id.
func (s *Schema) Heading(id string) string {
	for _, f := range s.fields {
		if f.ID == id {
			return f.Heading
		}
	}
	return ""
}

// Conflicts lists heading strings shared by more than one field.
func (s *Schema) Conflicts() []Conflict {
	return append([]Conflict(nil), s.conflicts...)
}
