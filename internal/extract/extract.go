package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is an HTML page flattened to plain text.
type Document struct {
	Title string
	Text  string
}

// separatorLine stands in for <hr>, matching the underscore rules used in the
// plain-text degree files.
const separatorLine = "__________"

// FromHTML flattens an HTML export of a degree page into line-oriented text.
// Every heading, paragraph, list item and table row lands on its own line so
// that section headings can be matched as whole lines. Content is taken from
// <main> or <article> when present, otherwise from <body>.
func FromHTML(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}

	title := ""
	if head := findFirst(node, "head"); head != nil {
		if t := findFirst(head, "title"); t != nil && t.FirstChild != nil {
			title = strings.TrimSpace(t.FirstChild.Data)
		}
	}

	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}
	var b strings.Builder
	if content != nil {
		collectLines(&b, content, false)
	}
	return Document{Title: title, Text: normalizeLines(b.String())}
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, tag); res != nil {
			return res
		}
	}
	return nil
}

func isBlock(name string) bool {
	switch name {
	case "p", "div", "section", "h1", "h2", "h3", "h4", "h5", "h6",
		"li", "ul", "ol", "tr", "table", "pre", "blockquote", "dt", "dd":
		return true
	}
	return false
}

func collectLines(b *strings.Builder, n *html.Node, inPre bool) {
	switch n.Type {
	case html.TextNode:
		if inPre {
			b.WriteString(n.Data)
		} else {
			b.WriteString(strings.Map(func(r rune) rune {
				if r == '\n' || r == '\r' || r == '\t' {
					return ' '
				}
				return r
			}, n.Data))
		}
		return
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		switch name {
		case "script", "style", "noscript", "nav", "footer", "iframe", "template":
			return
		case "br":
			b.WriteString("\n")
			return
		case "hr":
			b.WriteString("\n" + separatorLine + "\n")
			return
		case "td", "th":
			b.WriteString(" ")
		case "pre":
			inPre = true
		}
		if isBlock(name) {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectLines(b, c, inPre)
		}
		if isBlock(name) {
			b.WriteString("\n")
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(b, c, inPre)
	}
}

// normalizeLines collapses whitespace inside each line, keeps at most one
// blank line between blocks and drops leading and trailing blank lines.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
