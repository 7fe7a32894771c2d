package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hyperifyio/degreeextract/internal/extract"
)

// ErrNotText is returned for files that do not decode to UTF-8 text.
var ErrNotText = errors.New("not decodable as text")

// DefaultExtensions selects the plain-text degree files.
var DefaultExtensions = []string{".txt"}

// Document is one degree program source. ID is the file name relative to the
// input directory.
type Document struct {
	ID   string
	Path string
	Text string
	// Raw holds the bytes as read, before decoding.
	Raw []byte
}

// List returns the regular files in dir whose extension is in exts, sorted by
// name. Symlinks are followed; subdirectories are not descended into.
func List(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !hasExt(e.Name(), exts) {
			continue
		}
		mode := e.Type()
		if mode&os.ModeSymlink != 0 {
			fi, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
			}
			mode = fi.Mode()
		}
		if mode.IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadDocument reads and decodes one file. HTML files are flattened to text.
func ReadDocument(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := Decode(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text = extract.FromHTML([]byte(text)).Text
	}
	return Document{ID: filepath.Base(path), Path: path, Text: text, Raw: raw}, nil
}

// Decode turns file bytes into text. A UTF-8 byte order mark is dropped and
// UTF-16 input with a byte order mark is transcoded. Anything else must
// already be valid UTF-8. Line endings are normalized to "\n".
func Decode(b []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotText, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: invalid utf-8", ErrNotText)
	}
	return NormalizeNewlines(string(out)), nil
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeNewlines rewrites "\r\n" and lone "\r" line endings as "\n".
func NormalizeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e {
			return true
		}
	}
	return false
}
