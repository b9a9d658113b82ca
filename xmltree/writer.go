package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Header is the declaration written by WithHeader.
const Header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;",
)

// Option customizes serialization.
type Option func(*writer)

// WithHeader prefixes the output with an XML declaration.
func WithHeader() Option {
	return func(w *writer) {
		w.header = true
	}
}

// WithIndent puts every child element on its own line, indented by indent per
// level. Elements carrying character data are written as-is.
func WithIndent(indent string) Option {
	return func(w *writer) {
		w.indent = indent
	}
}

type writer struct {
	buf    bytes.Buffer
	header bool
	indent string
}

// Marshal renders root and its subtree. Attributes are written in slice order
// and empty elements are self-closing, so equal trees give equal bytes.
func Marshal(root *Node, opts ...Option) []byte {
	w := &writer{}
	for _, opt := range opts {
		opt(w)
	}
	if w.header {
		w.buf.WriteString(Header)
	}
	w.writeNode(root, 0)
	return w.buf.Bytes()
}

// Write renders root to out in a single write.
func Write(out io.Writer, root *Node, opts ...Option) error {
	_, err := out.Write(Marshal(root, opts...))
	return err
}

func (w *writer) writeNode(n *Node, depth int) {
	name := n.Name()
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, a := range n.Attrs {
		w.buf.WriteByte(' ')
		if a.Name.Space != "" {
			w.buf.WriteString(a.Name.Space)
			w.buf.WriteByte(':')
		}
		w.buf.WriteString(a.Name.Local)
		w.buf.WriteString(`="`)
		// bytes.Buffer writes never fail
		_ = xml.EscapeText(&w.buf, []byte(a.Value))
		w.buf.WriteByte('"')
	}
	if n.Text == "" && len(n.Children) == 0 {
		w.buf.WriteString("/>")
		return
	}
	w.buf.WriteByte('>')
	textEscaper.WriteString(&w.buf, n.Text)

	pretty := w.indent != "" && n.Text == "" && tailsEmpty(n.Children)
	for _, c := range n.Children {
		if pretty {
			w.newline(depth + 1)
		}
		w.writeNode(c, depth+1)
		textEscaper.WriteString(&w.buf, c.Tail)
	}
	if pretty && len(n.Children) > 0 {
		w.newline(depth)
	}

	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

func (w *writer) newline(depth int) {
	w.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		w.buf.WriteString(w.indent)
	}
}

func tailsEmpty(children []*Node) bool {
	for _, c := range children {
		if c.Tail != "" {
			return false
		}
	}
	return true
}
