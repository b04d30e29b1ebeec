// Package xmlq is the query layer between the channel extractors and the
// underlying XML document. Paths are slash-separated local element names;
// namespace prefixes are ignored, so the default TCX namespace and the
// prefixed activity-extension namespace resolve through the same path.
package xmlq

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// Node is one element of a parsed document.
type Node = etree.Element

// Load parses the XML file at path and returns the document root element.
func Load(path string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}

// Find returns every element under n matching path, in document order.
func Find(n *Node, path string) []*Node {
	matches := []*Node{n}
	for _, seg := range strings.Split(path, "/") {
		var next []*Node
		for _, m := range matches {
			for _, child := range m.ChildElements() {
				if child.Tag == seg {
					next = append(next, child)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		matches = next
	}
	return matches
}

// First returns the first element matching path, or nil if none match.
func First(n *Node, path string) *Node {
	if found := Find(n, path); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Text returns the element's character data with surrounding space removed.
func Text(n *Node) string {
	return strings.TrimSpace(n.Text())
}
