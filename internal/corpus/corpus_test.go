package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, b []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func load(dir string, exts []string) ([]Document, error) {
	names, err := List(dir, exts)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(names))
	for _, n := range names {
		d, err := ReadDocument(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func TestListAndRead_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.txt", []byte("Degree Name\nC"))
	writeFile(t, dir, "a.TXT", []byte("Degree Name\nA"))
	writeFile(t, dir, "b.md", []byte("ignored"))
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	docs, err := load(dir, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].ID != "a.TXT" || docs[1].ID != "c.txt" {
		t.Fatalf("unexpected order: %s, %s", docs[0].ID, docs[1].ID)
	}
	if docs[1].Text != "Degree Name\nC" {
		t.Fatalf("text = %q", docs[1].Text)
	}
}

func TestListAndRead_EmptyDir(t *testing.T) {
	docs, err := load(t.TempDir(), []string{".txt"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no docs, got %d", len(docs))
	}
}

func TestListAndRead_MissingDir(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestListAndRead_UndecodableFileFailsRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", []byte("ok"))
	writeFile(t, dir, "bad.txt", []byte{'a', 0xc3, 0x28, 'b'})
	_, err := load(dir, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "bad.txt") {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte("\xef\xbb\xbfDegree Name\nBA"))
	if err != nil || got != "Degree Name\nBA" {
		t.Fatalf("utf-8 bom: %q %v", got, err)
	}

	// "Hi" in UTF-16LE with BOM.
	got, err = Decode([]byte{0xff, 0xfe, 'H', 0, 'i', 0})
	if err != nil || got != "Hi" {
		t.Fatalf("utf-16le: %q %v", got, err)
	}

	if _, err := Decode([]byte{'a', 0xc3}); !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText for truncated utf-8, got %v", err)
	}
	got, err = Decode([]byte("a\x00b"))
	if err != nil || got != "a\x00b" {
		t.Fatalf("NUL in valid utf-8 should decode: %q %v", got, err)
	}
}

func TestReadDocument_HTML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.html", []byte("<html><body><h2>Degree Name</h2><p>MA Law</p></body></html>"))
	d, err := ReadDocument(filepath.Join(dir, "p.html"))
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if d.Text != "Degree Name\n\nMA Law" {
		t.Fatalf("text = %q", d.Text)
	}
	if d.ID != "p.html" {
		t.Fatalf("id = %q", d.ID)
	}
}

func TestDecode_NormalizesLineEndings(t *testing.T) {
	cases := map[string]string{
		"Degree Name\r\nBA Law\r\n": "Degree Name\nBA Law\n",
		"Degree Name\rBA Law\r":     "Degree Name\nBA Law\n",
		"a\r\r\nb\n\rc":             "a\n\nb\n\nc",
	}
	for in, want := range cases {
		got, err := Decode([]byte(in))
		if err != nil || got != want {
			t.Errorf("Decode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	// UTF-16LE with BOM: "a\r\nb".
	got, err := Decode([]byte{0xff, 0xfe, 'a', 0, '\r', 0, '\n', 0, 'b', 0})
	if err != nil || got != "a\nb" {
		t.Fatalf("utf-16 crlf: %q %v", got, err)
	}
}

func TestList_FollowsSymlinks(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "real.txt", []byte("Degree Name\nMA Law\n"))
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(src, "real.txt"), filepath.Join(dir, "linked.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(src, filepath.Join(dir, "folder.txt")); err != nil {
		t.Fatalf("symlink dir: %v", err)
	}
	names, err := List(dir, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "linked.txt" {
		t.Fatalf("names = %v", names)
	}
	d, err := ReadDocument(filepath.Join(dir, names[0]))
	if err != nil || d.Text != "Degree Name\nMA Law\n" {
		t.Fatalf("read linked: %q %v", d.Text, err)
	}
}

func TestList_BrokenSymlinkFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(dir, "gone.txt"), filepath.Join(dir, "dangling.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if _, err := List(dir, nil); err == nil || !strings.Contains(err.Error(), "dangling.txt") {
		t.Fatalf("expected error naming dangling.txt, got %v", err)
	}
}
