package domlite

import (
	"fmt"

	"github.com/tagkit-dev/tagkit/pkg/hyper"
)

// Document creates elements and text nodes. It implements
// hyper.ImperativeBackend.
type Document struct{}

// NewDocument creates a new Document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement creates a bare element for the given tag. The tag must be
// a syntactically valid element name: a letter followed by letters,
// digits, or hyphens.
func (d *Document) CreateElement(tag string) (hyper.Node, error) {
	if !validTagName(tag) {
		return nil, fmt.Errorf("domlite: invalid tag name %q", tag)
	}
	return &Elem{TagName: tag}, nil
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(text string) hyper.Node {
	return &Elem{IsText: true, Text: text}
}

// validTagName reports whether tag is a legal element name.
func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// Elem is an in-memory DOM-style element or text node.
type Elem struct {
	TagName string
	IsText  bool
	Text    string

	// Attributes holds values applied through SetAttribute.
	Attributes map[string]any

	// ChildNodes holds attached children in attachment order, including
	// nil absence markers forwarded from zero-argument builder calls.
	ChildNodes []hyper.Node

	fields map[string]map[string]any
}

// SetAttribute applies a single attribute.
func (e *Elem) SetAttribute(key string, value any) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]any)
	}
	e.Attributes[key] = value
}

// Field returns the named sub-object (e.g. "style"), allocating it on
// first access.
func (e *Elem) Field(name string) map[string]any {
	if e.fields == nil {
		e.fields = make(map[string]map[string]any)
	}
	if e.fields[name] == nil {
		e.fields[name] = make(map[string]any)
	}
	return e.fields[name]
}

// AppendChild attaches child after any existing children. Nil markers are
// recorded as appended; serialization skips them.
func (e *Elem) AppendChild(child hyper.Node) {
	e.ChildNodes = append(e.ChildNodes, child)
}

// Fields returns the element's named sub-objects. Sub-objects never
// touched through Field are absent.
func (e *Elem) Fields() map[string]map[string]any {
	return e.fields
}
