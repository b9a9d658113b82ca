package tessy

import (
	"strings"

	"github.com/drone/drone-tessy/xmltree"
)

// maskedAttributes have their letters and digits masked.
var maskedAttributes = map[string]bool{
	"testobject_name": true,
	"project_name":    true,
	"module_name":     true,
	"name":            true,
}

// blankedAttributes are emptied.
var blankedAttributes = map[string]bool{
	"host": true,
	"user": true,
}

// clearedTags lose their attributes and content.
var clearedTags = map[string]bool{
	"properties":      true,
	"interface":       true,
	"interfaceReport": true,
	"inputs":          true,
	"results":         true,
	"prologs_epilogs": true,
	"usercode":        true,
	"coverage":        true,
}

// Mask replaces lowercase letters with x, uppercase letters with X and digits
// with 0, keeping length and punctuation.
func Mask(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'x'
		case r >= 'A' && r <= 'Z':
			return 'X'
		case r >= '0' && r <= '9':
			return '0'
		}
		return r
	}, s)
}

// Anonymize scrubs identifying text from a Tessy report in place and returns
// root. Only text changes; every element stays where it was, so a converted
// anonymized report has the same shape as the converted original.
func Anonymize(root *xmltree.Node) *xmltree.Node {
	anonymizeAttrs(root)
	for _, child := range root.Children {
		if clearedTags[child.Tag] {
			child.Clear()
			continue
		}
		Anonymize(child)
	}
	return root
}

// anonymizeAttrs only touches unprefixed attributes; xsi:* and other
// namespaced attributes are left alone.
func anonymizeAttrs(n *xmltree.Node) {
	for i := range n.Attrs {
		if n.Attrs[i].Name.Space != "" {
			continue
		}
		key := n.Attrs[i].Name.Local
		switch {
		case maskedAttributes[key]:
			n.Attrs[i].Value = Mask(n.Attrs[i].Value)
		case blankedAttributes[key]:
			n.Attrs[i].Value = ""
		}
	}
}

// AnonymizeBytes parses a Tessy document, anonymizes it and serializes it back.
func AnonymizeBytes(data []byte, opts ...xmltree.Option) ([]byte, error) {
	root, err := xmltree.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return xmltree.Marshal(Anonymize(root), opts...), nil
}

// AnonymizeText is AnonymizeBytes for text input and output.
func AnonymizeText(text string) (string, error) {
	out, err := AnonymizeBytes([]byte(text))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
