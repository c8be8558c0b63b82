package xmlutils

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is a generic XML element tree. Element names are kept as written in
// the document; navigation helpers below compare them case-sensitively.
type Node struct {
	XMLName  xml.Name
	Children []Node `xml:",any"`
	Chardata string `xml:",chardata"`
}

// ParseTree decodes an XML document into a Node tree rooted at the document
// element.
func ParseTree(r io.Reader) (*Node, error) {
	var root Node
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode XML tree: %w", err)
	}
	return &root, nil
}

// Name returns the element's local name.
func (n *Node) Name() string {
	return n.XMLName.Local
}

// Text returns the element's character data with surrounding whitespace
// removed.
func (n *Node) Text() string {
	return strings.TrimSpace(n.Chardata)
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// ChildText returns the trimmed text of the named direct child, or an empty
// string when the child is absent.
func (n *Node) ChildText(name string) string {
	c := n.Child(name)
	if c == nil {
		return ""
	}
	return c.Text()
}

// ChildrenNamed returns all direct children with the given name, in document
// order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// Path descends through the named children in order and returns the node at
// the end of the path, or nil as soon as a segment is missing.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// PathText returns the trimmed text at the end of the path, or an empty
// string when any segment is missing.
func (n *Node) PathText(names ...string) string {
	node := n.Path(names...)
	if node == nil {
		return ""
	}
	return node.Text()
}

// Has reports whether the named direct child exists.
func (n *Node) Has(name string) bool {
	return n.Child(name) != nil
}
