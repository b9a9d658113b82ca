// Package xmltree holds a small generic XML element tree together with the
// reader and writer used to move it to and from text.
package xmltree

import "encoding/xml"

// Node is a single element with ordered attributes and children.
//
// Space holds the namespace prefix as written in the document, Tag the local
// name. Attribute names keep their prefix in Name.Space the same way.
// Text holds the character data between the start tag and the first child,
// Tail the character data between the end tag and the next sibling.
type Node struct {
	Space    string
	Tag      string
	Attrs    []xml.Attr
	Children []*Node
	Text     string
	Tail     string
}

// NewNode creates an element with the given attributes.
func NewNode(tag string, attrs ...xml.Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// Attr builds an unqualified attribute.
func Attr(key, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: key}, Value: value}
}

// Name returns the element name including its prefix.
func (n *Node) Name() string {
	return qualified(xml.Name{Space: n.Space, Local: n.Tag})
}

// Get returns the value of the unprefixed attribute named key.
func (n *Node) Get(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == key {
			return a.Value, true
		}
	}
	return "", false
}

// GetOr returns the value of the unprefixed attribute named key, or def when absent.
func (n *Node) GetOr(key, def string) string {
	if v, ok := n.Get(key); ok {
		return v
	}
	return def
}

// Set replaces the value of an existing unprefixed attribute or appends a
// new one.
func (n *Node) Set(key, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name.Space == "" && n.Attrs[i].Name.Local == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr(key, value))
}

// Find returns the first direct child with the given tag, or nil.
func (n *Node) Find(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns the direct children with the given tag in document order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Append adds child as the last child of n and returns child.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Clear drops attributes, text and children. The tail is kept so the
// surrounding layout of the document does not change.
func (n *Node) Clear() {
	n.Attrs = nil
	n.Children = nil
	n.Text = ""
}
