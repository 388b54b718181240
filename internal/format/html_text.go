// Package format provides email body format conversion.
package format

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Converter turns HTML email bodies into plain text suitable for
// linguistic analysis.
type Converter struct{}

var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "tr": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "table": true, "ul": true, "ol": true,
}

var skipTags = map[string]bool{
	"script": true, "style": true, "head": true, "title": true,
}

// HTML2Text extracts the visible text of an HTML document. Block-level
// elements become line breaks; script, style and head content is dropped.
// Unparseable input falls back to the raw bytes.
func (c Converter) HTML2Text(raw []byte) string {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return string(raw)
	}

	w := &textWriter{}
	w.collect(doc)

	return collapseBlankLines(w.buf.String())
}

// textWriter accumulates text nodes, inserting a single space wherever
// the source HTML had whitespace between inline fragments.
type textWriter struct {
	buf      strings.Builder
	pending  bool
	lineOpen bool
}

func (w *textWriter) collect(n *html.Node) {
	if n.Type == html.ElementNode && skipTags[n.Data] {
		return
	}

	if n.Type == html.TextNode {
		w.writeText(n.Data)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		w.collect(child)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] && w.lineOpen {
		w.buf.WriteByte('\n')
		w.lineOpen = false
		w.pending = false
	}
}

func (w *textWriter) writeText(data string) {
	text := strings.TrimSpace(data)
	if text == "" {
		if data != "" && w.lineOpen {
			w.pending = true
		}
		return
	}

	leading := strings.TrimLeft(data, " \t\r\n") != data
	if w.lineOpen && (w.pending || leading) {
		w.buf.WriteByte(' ')
	}
	w.buf.WriteString(text)

	w.pending = strings.TrimRight(data, " \t\r\n") != data
	w.lineOpen = true
}

func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")

	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
