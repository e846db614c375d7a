// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shortcut

import (
	"errors"
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
)

var (
	errNoDict   = errors.New("property list has no dict element")
	errNoURLKey = errors.New("dict has no URL key followed by a value")
)

// extractWeblocFile reads an XML property list and returns the element that
// follows <key>URL</key> in the first <dict>.
func extractWeblocFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	dict := xmlquery.FindOne(doc, "//dict")
	if dict == nil {
		return "", errNoDict
	}

	children := elementChildren(dict)
	for i, child := range children {
		if child.Data != "key" || child.InnerText() != "URL" {
			continue
		}
		if i+1 >= len(children) {
			return "", errNoURLKey
		}
		return children[i+1].InnerText(), nil
	}
	return "", errNoURLKey
}

// elementChildren returns the element children of n, skipping text,
// comment and other non-element nodes.
func elementChildren(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}
