// Package slots is a small DOM engine for populating named regions of an
// HTML template: labelled tables, id'd sections and classed nodes. The
// builders locate slots with matchers and replace their content; a slot
// missing from the template is "nothing to populate", never an error,
// since the template is a collaborator contract rather than user input.
package slots

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document wraps a parsed HTML template.
type Document struct {
	root *html.Node
}

// Parse parses a template into a detached document tree. The tree is
// exclusively owned by the caller; html.Parse accepts any input, so the
// only error path is a broken reader, which a string never triggers.
func Parse(template string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(template))
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Render serializes the document as a standalone printable page:
// a doctype line followed by the <html> element.
func (d *Document) Render() (string, error) {
	var buf strings.Builder
	buf.WriteString("<!doctype html>\n")
	target := FindIn(d.root, Tag("html"))
	if target == nil {
		target = d.root
	}
	if err := html.Render(&buf, target); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SetTitle replaces the document title text.
func (d *Document) SetTitle(title string) {
	if node := FindIn(d.root, Tag("title")); node != nil {
		SetText(node, title)
	}
}

// Find returns the first node in document order matching all matchers,
// or nil when the template has no such slot.
func (d *Document) Find(matchers ...Matcher) *html.Node {
	return FindIn(d.root, matchers...)
}

// FindAll returns every node in document order matching all matchers.
func (d *Document) FindAll(matchers ...Matcher) []*html.Node {
	return FindAllIn(d.root, matchers...)
}

// Matcher is a predicate over element nodes.
type Matcher func(*html.Node) bool

// Tag matches elements by tag name.
func Tag(name string) Matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == name
	}
}

// ID matches the element with the given id attribute.
func ID(id string) Matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	}
}

// Class matches elements whose class attribute contains the given name.
func Class(name string) Matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(Attr(n, "class")) {
			if c == name {
				return true
			}
		}
		return false
	}
}

// LabelledTable matches a table carrying the given aria-label. The labels
// are part of the template file's contract.
func LabelledTable(label string) Matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "table" && Attr(n, "aria-label") == label
	}
}

func matchesAll(n *html.Node, matchers []Matcher) bool {
	for _, m := range matchers {
		if !m(n) {
			return false
		}
	}
	return len(matchers) > 0
}

// FindIn returns the first descendant of n (n excluded) matching all
// matchers, walking in document order.
func FindIn(n *html.Node, matchers ...Matcher) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if matchesAll(c, matchers) {
			return c
		}
		if found := FindIn(c, matchers...); found != nil {
			return found
		}
	}
	return nil
}

// FindAllIn returns every descendant of n (n excluded) matching all
// matchers, in document order.
func FindAllIn(n *html.Node, matchers ...Matcher) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if matchesAll(c, matchers) {
			out = append(out, c)
		}
		out = append(out, FindAllIn(c, matchers...)...)
	}
	return out
}

// Attr returns the value of an attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// AddStyle appends CSS declarations to the element's style attribute.
// Declarations already present are not repeated, so re-populating a
// document leaves the attribute unchanged.
func AddStyle(n *html.Node, css string) {
	existing := Attr(n, "style")
	if strings.Contains(existing, css) {
		return
	}
	if existing != "" && !strings.HasSuffix(existing, ";") {
		existing += ";"
	}
	SetAttr(n, "style", existing+css)
}

// Text returns the concatenated text content of a node.
func Text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		buf.WriteString(Text(c))
	}
	return buf.String()
}

// SetText replaces the node's children with a single text node.
func SetText(n *html.Node, text string) {
	RemoveChildren(n)
	n.AppendChild(TextNode(text))
}

// RemoveChildren detaches all children of n.
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// ReplaceChildren replaces the node's children with the given nodes.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	RemoveChildren(n)
	Append(n, children...)
}

// Append attaches detached nodes to a parent.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		parent.AppendChild(c)
	}
}

// Remove detaches a node from its parent, if any.
func Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Element creates a detached element node.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     attrs,
	}
}

// TextNode creates a detached text node.
func TextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
