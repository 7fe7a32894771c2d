package heading

import (
	"strings"

	"github.com/hyperifyio/degreeextract/internal/schema"
)

// Match is one heading line found in a document. Start and End are byte
// offsets of the line, End excluding the line break.
type Match struct {
	Field string
	Start int
	End   int
}

// Locate scans text line by line and returns every line that spells a known
// heading, in document order. Repeated headings are all returned; a document
// without headings yields nil.
func Locate(text string, s *schema.Schema) []Match {
	var matches []Match
	start := 0
	for start <= len(text) {
		end := len(text)
		next := len(text) + 1
		if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
			end = start + i
			next = end + 1
		}
		if id, ok := s.Lookup(text[start:end]); ok {
			matches = append(matches, Match{Field: id, Start: start, End: end})
		}
		start = next
	}
	return matches
}

// Duplicates returns the fields matched more than once, in order of their
// second occurrence.
func Duplicates(matches []Match) []string {
	count := make(map[string]int, len(matches))
	var out []string
	for _, m := range matches {
		count[m.Field]++
		if count[m.Field] == 2 {
			out = append(out, m.Field)
		}
	}
	return out
}
