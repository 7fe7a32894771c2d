package extract

import (
	"strings"
	"testing"
)

func TestFromHTML_HeadingsOnOwnLines(t *testing.T) {
	page := `<!doctype html>
	<html>
	  <head><title>BA Business</title></head>
	  <body>
	    <nav>Home | Courses</nav>
	    <main>
	      <h2>Degree Name</h2>
	      <p>BA (Hons)   Business
	         Management</p>
	      <hr>
	      <h2>Fees &amp; Funding</h2>
	      <p>9250 per year</p>
	    </main>
	    <footer>Copyright</footer>
	  </body>
	</html>`

	doc := FromHTML([]byte(page))
	if doc.Title != "BA Business" {
		t.Fatalf("title = %q", doc.Title)
	}
	want := "Degree Name\n\nBA (Hons) Business Management\n\n" + separatorLine + "\n\nFees & Funding\n\n9250 per year"
	if doc.Text != want {
		t.Fatalf("text mismatch:\n got: %q\nwant: %q", doc.Text, want)
	}
}

func TestFromHTML_FallbackToBodyAndSkipsScripts(t *testing.T) {
	page := `<html><body><h3>Overview</h3><script>var x = 1;</script><ul><li>One</li><li>Two</li></ul></body></html>`
	doc := FromHTML([]byte(page))
	if strings.Contains(doc.Text, "var x") {
		t.Fatalf("script leaked into text: %q", doc.Text)
	}
	lines := strings.Split(doc.Text, "\n")
	if lines[0] != "Overview" {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(doc.Text, "\nOne\n") || !strings.HasSuffix(doc.Text, "Two") {
		t.Fatalf("list items should be separate lines: %q", doc.Text)
	}
}

func TestFromHTML_TableRows(t *testing.T) {
	page := `<html><body><table><tr><th>Intake</th><td>September</td></tr><tr><td>Campus</td><td>London</td></tr></table></body></html>`
	doc := FromHTML([]byte(page))
	if doc.Text != "Intake September\n\nCampus London" {
		t.Fatalf("text = %q", doc.Text)
	}
}
