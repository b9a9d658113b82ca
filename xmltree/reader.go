package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ParseError reports a document that is not well-formed XML.
type ParseError struct {
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("xml parse error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return "xml parse error: " + e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads one XML document from text.
func Parse(text string) (*Node, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseBytes reads one XML document from data.
func ParseBytes(data []byte) (*Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader reads one XML document from r. Documents declaring a non UTF-8
// encoding are transcoded. Namespace prefixes are kept as written; comments,
// processing instructions and directives are dropped.
func ParseReader(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newParseError(d, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Space: t.Name.Space, Tag: t.Name.Local, Attrs: copyAttrs(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					return nil, newParseError(d, errors.New("multiple root elements"))
				}
				root = n
			} else {
				stack[len(stack)-1].Append(n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, newParseError(d, fmt.Errorf("unexpected end element </%s>", qualified(t.Name)))
			}
			open := stack[len(stack)-1]
			if open.Space != t.Name.Space || open.Tag != t.Name.Local {
				return nil, newParseError(d, fmt.Errorf("element <%s> closed by </%s>", open.Name(), qualified(t.Name)))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, newParseError(d, errors.New("character data outside of root element"))
				}
				continue
			}
			parent := stack[len(stack)-1]
			if k := len(parent.Children); k > 0 {
				parent.Children[k-1].Tail += string(t)
			} else {
				parent.Text += string(t)
			}
		}
	}

	if len(stack) > 0 {
		return nil, newParseError(d, fmt.Errorf("unexpected EOF, element <%s> not closed", stack[len(stack)-1].Name()))
	}
	if root == nil {
		return nil, &ParseError{Msg: "no root element", Err: io.ErrUnexpectedEOF}
	}
	return root, nil
}

func newParseError(d *xml.Decoder, err error) *ParseError {
	line, col := d.InputPos()
	msg := err.Error()
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		line = syntax.Line
		msg = syntax.Msg
	}
	return &ParseError{Line: line, Column: col, Msg: msg, Err: err}
}

func copyAttrs(attrs []xml.Attr) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	return append([]xml.Attr(nil), attrs...)
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
