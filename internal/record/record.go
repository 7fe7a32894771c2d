package record

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/hyperifyio/degreeextract/internal/heading"
	"github.com/hyperifyio/degreeextract/internal/schema"
)

// Keys of the derived attributes appended after the canonical fields.
const (
	SlugKey  = schema.SlugField
	LevelKey = schema.LevelField
)

// Record is one degree program. Every canonical field of the schema it was
// built with is present. A Record is never modified after Build.
type Record struct {
	ids    []string
	values map[string]string
	slug   string
	level  string
}

// Build slices text at the matched headings and derives slug and level from
// the name. When a field is matched twice the later section wins.
func Build(text string, matches []heading.Match, s *schema.Schema) Record {
	ids := s.IDs()
	values := make(map[string]string, len(ids))
	for _, id := range ids {
		values[id] = schema.Sentinel
	}

	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1].Start
		}
		values[m.Field] = cleanSection(text[m.End:end])
	}

	name := firstLine(values[schema.NameField])
	values[schema.NameField] = name

	return Record{
		ids:    ids,
		values: values,
		slug:   Slugify(name),
		level:  Level(name),
	}
}

// cleanSection trims a raw section and drops the trailing underscore rule the
// source files use to separate sections.
func cleanSection(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimRight(s, "_")
	return strings.TrimSpace(s)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

// Get returns the value of a canonical field, or "" for unknown ids.
func (r Record) Get(id string) string { return r.values[id] }

func (r Record) Name() string  { return r.values[schema.NameField] }
func (r Record) Slug() string  { return r.slug }
func (r Record) Level() string { return r.level }

// Fields returns the canonical field ids in schema order.
func (r Record) Fields() []string { return append([]string(nil), r.ids...) }

// MarshalJSON emits canonical fields in schema order followed by slug and level.
func (r Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	write := func(k, v string) error {
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		kb, err := quote(k)
		if err != nil {
			return err
		}
		vb, err := quote(v)
		if err != nil {
			return err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
		return nil
	}
	for _, id := range r.ids {
		if err := write(id, r.values[id]); err != nil {
			return nil, err
		}
	}
	if err := write(SlugKey, r.slug); err != nil {
		return nil, err
	}
	if err := write(LevelKey, r.level); err != nil {
		return nil, err
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// quote encodes s as a JSON string without HTML escaping so that "&" and "<"
// reach the front end as written.
func quote(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
