package app

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/degreeextract/internal/record"
	"github.com/hyperifyio/degreeextract/internal/schema"
)

var urlRe = regexp.MustCompile(`https?://[^\s)]+`)

// writeCatalogPDF renders one page per degree: the name as title, level and
// slug underneath, then every extracted section under its primary heading.
// Sentinel sections are omitted. URLs in section text become links.
func writeCatalogPDF(s *schema.Schema, records []record.Record, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Degree catalogue", true)
	pdf.SetFont("Helvetica", "", 11)

	if len(records) == 0 {
		pdf.AddPage()
		pdf.CellFormat(0, 8, "No degree programs.", "", 1, "L", false, 0, "")
		return pdf.OutputFileAndClose(outPath)
	}

	for _, r := range records {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, tr(r.Name()), "", "L", false)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, tr("Level: "+r.Level()+"   Slug: "+r.Slug()), "", 1, "L", false, 0, "")
		pdf.Ln(3)

		for _, id := range r.Fields() {
			v := r.Get(id)
			if id == schema.NameField || v == schema.Sentinel || strings.TrimSpace(v) == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 7, tr(s.Heading(id)), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			for _, line := range strings.Split(v, "\n") {
				writePDFLine(pdf, tr, strings.TrimSpace(line))
			}
			pdf.Ln(2)
		}
	}
	return pdf.OutputFileAndClose(outPath)
}

func writePDFLine(pdf *gofpdf.Fpdf, tr func(string) string, line string) {
	if line == "" {
		pdf.Ln(3)
		return
	}
	locs := urlRe.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
		return
	}
	pos := 0
	for _, m := range locs {
		if m[0] > pos {
			pdf.Write(5, tr(line[pos:m[0]]))
		}
		url := line[m[0]:m[1]]
		pdf.WriteLinkString(5, tr(url), url)
		pos = m[1]
	}
	if pos < len(line) {
		pdf.Write(5, tr(line[pos:]))
	}
	pdf.Ln(5)
}
