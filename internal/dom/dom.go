package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML page. All lookups report absence through ErrNotFound.
type Document struct {
	*Node
}

// Node wraps a single matched element.
type Node struct {
	sel *goquery.Selection
}

func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{Node: &Node{sel: doc.Selection}}, nil
}

// Select returns the first descendant matching a CSS selector.
func (n *Node) Select(css string) (*Node, error) {
	found := n.sel.Find(css).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, css)
	}
	return &Node{sel: found}, nil
}

// FindFirst returns the first descendant with the given tag and, when class
// is not empty, carrying that class.
func (n *Node) FindFirst(tag, class string) (*Node, error) {
	return n.Select(selector(tag, class))
}

// FindAll returns every descendant with the given tag in document order.
func (n *Node) FindAll(tag string) []*Node {
	return n.SelectAll(tag)
}

func (n *Node) SelectAll(css string) []*Node {
	var nodes []*Node
	n.sel.Find(css).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// FindByText returns the first descendant with the given tag whose text is exactly text.
func (n *Node) FindByText(tag, text string) (*Node, error) {
	found := n.sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Text() == text
	}).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: %s with text %q", ErrNotFound, tag, text)
	}
	return &Node{sel: found}, nil
}

// Text returns the combined text of the node and its descendants, untrimmed.
func (n *Node) Text() string {
	return n.sel.Text()
}

func (n *Node) Attr(name string) (string, error) {
	val, ok := n.sel.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: attribute %s on <%s>", ErrNotFound, name, goquery.NodeName(n.sel))
	}
	return val, nil
}

func (n *Node) Parent() (*Node, error) {
	parent := n.sel.Parent()
	if parent.Length() == 0 {
		return nil, fmt.Errorf("%w: parent of <%s>", ErrNotFound, goquery.NodeName(n.sel))
	}
	return &Node{sel: parent}, nil
}

func selector(tag, class string) string {
	if class == "" {
		return tag
	}
	return tag + "." + class
}
