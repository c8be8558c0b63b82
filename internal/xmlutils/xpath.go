// Package xmlutils provides the XML navigation helpers used by the parsing
// pipeline: a lightweight element tree and XPath existence probes.
package xmlutils

import (
	"fmt"
	"io"

	"gopkg.in/xmlpath.v2"
)

// LoadXML parses an XML document into an xmlpath root node for probing.
func LoadXML(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// Exists reports whether the given XPath expression matches at least one
// node under root.
func Exists(root *xmlpath.Node, xpath string) (bool, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return false, fmt.Errorf("failed to compile XPath: %w", err)
	}
	return path.Exists(root), nil
}
