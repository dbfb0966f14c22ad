// Package carrier implements the SOAP client for the wholesale carrier's
// address-matching and line-characteristics operations. Responses are read
// with a tolerant, non-validating element scanner: the carrier's payloads
// drift across namespace prefixes and optional blocks, so the parsers look
// for local element names anywhere in the document and treat anything
// missing or malformed as absent rather than fatal.
package carrier

import (
	"encoding/xml"
	"strings"
)

// nullToken is the carrier's wire representation for an absent field.
const nullToken = "null"

// node is one element in a parsed response document. Only local names are
// kept; namespace prefixes carry no meaning for these payloads.
type node struct {
	name     string
	text     string
	children []*node
}

// parseDocument reads an XML document into a node tree rooted at a synthetic
// element. Parsing is fail-soft: on a tokenizer error the tree built so far
// is returned, matching the carrier's habit of emitting technically invalid
// but still usable documents.
func parseDocument(body string) *node {
	root := &node{}
	stack := []*node{root}
	dec := xml.NewDecoder(strings.NewReader(body))
	for {
		tok, err := dec.Token()
		if err != nil {
			return root
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &node{name: t.Name.Local}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, child)
			stack = append(stack, child)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.text += string(t)
		}
	}
}

// find returns the first element with the given local name, depth-first, or
// nil when none exists. Matching is case-insensitive.
func (n *node) find(local string) *node {
	for _, c := range n.children {
		if strings.EqualFold(c.name, local) {
			return c
		}
		if hit := c.find(local); hit != nil {
			return hit
		}
	}
	return nil
}

// findAll returns every element with the given local name in document order.
func (n *node) findAll(local string) []*node {
	var out []*node
	for _, c := range n.children {
		if strings.EqualFold(c.name, local) {
			out = append(out, c)
		}
		out = append(out, c.findAll(local)...)
	}
	return out
}

// value returns the element's trimmed text, with the carrier's null token
// collapsed to empty.
func (n *node) value() string {
	v := strings.TrimSpace(n.text)
	if strings.EqualFold(v, nullToken) {
		return ""
	}
	return v
}

// childValue returns the trimmed text of the first descendant with the given
// local name, or empty when the element is missing or holds the null token.
func (n *node) childValue(local string) string {
	c := n.find(local)
	if c == nil {
		return ""
	}
	return c.value()
}

// affirmative reports whether a carrier flag value means yes.
func affirmative(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}

// xmlEscape escapes a value for interpolation into a request envelope.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
