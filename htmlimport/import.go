// Package htmlimport converts HTML fragments into document body elements.
package htmlimport

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/model"
)

// Append parses HTML from r and appends the corresponding body elements to
// the section, in document order:
//
//   - h1..h6 become titles (the digit is the depth), registered with the
//     section's document registry like any other title
//   - p and leaf div become paragraphs
//   - ul/ol list items become one paragraph per item
//   - table/tr/td|th become tables
//   - hr becomes a page break
//
// Script, style, and similar non-content elements are skipped; unknown
// elements are descended into. A parse failure is returned wrapped and
// nothing is appended.
func Append(sec *model.Section, r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		importNode(sec, c)
	}
	return nil
}

// AppendString is a convenience wrapper around Append for string fragments.
func AppendString(sec *model.Section, fragment string) error {
	return Append(sec, strings.NewReader(fragment))
}

// importNode recursively processes DOM nodes, appending elements to the
// section as recognized blocks are found.
func importNode(sec *model.Section, n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	if shouldSkipElement(n.Data) {
		return
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		depth := int(n.Data[1] - '0')
		if text := getTextContent(n); text != "" {
			sec.AddTitle(text, depth)
		}
		return

	case "p", "div":
		if isBlockContainer(n) {
			// Block container: import children individually
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				importNode(sec, c)
			}
			return
		}
		if text := getTextContent(n); text != "" {
			sec.AddParagraph(text)
		}
		return

	case "ul", "ol":
		importListItems(sec, n)
		return

	case "table":
		importTable(sec, n)
		return

	case "hr":
		sec.AddPageBreak()
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		importNode(sec, c)
	}
}

// importListItems appends one paragraph per list item, including items of
// nested lists, in document order.
func importListItems(sec *model.Section, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "li":
			if text := getTextContent(c); text != "" {
				sec.AddParagraph(text)
			}
		case "ul", "ol":
			importListItems(sec, c)
		}
	}
}

// importTable builds a model table from a table element. thead/tbody/tfoot
// wrappers are transparent; th cells are marked as header cells.
func importTable(sec *model.Section, n *html.Node) {
	table := sec.AddTable("")
	importRows(table, n)
}

func importRows(table *model.Table, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "tr":
			row := table.AddRow()
			for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type != html.ElementNode {
					continue
				}
				if cell.Data == "td" || cell.Data == "th" {
					mc := row.AddCell(getTextContent(cell))
					mc.IsHeader = cell.Data == "th"
				}
			}
		case "thead", "tbody", "tfoot":
			importRows(table, c)
		}
	}
}

// shouldSkipElement returns true for elements whose content never belongs
// in a document body.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// isBlockContainer returns true if the element has block-level children.
func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "p", "ul", "ol", "table", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "article", "section":
				return true
			}
		}
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.Join(strings.Fields(result.String()), " ")
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
			result.WriteString(" ")
		}
	}
}
