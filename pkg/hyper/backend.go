package hyper

// Convention selects which calling convention a Set uses against its
// backend. The convention is fixed at construction time rather than probed
// from the backend, so a Set is always unambiguous about how it will call.
type Convention uint8

const (
	// Imperative is the DOM-style convention: elements are created bare
	// from a tag name, then attributes are applied and children attached
	// one by one.
	Imperative Convention = iota

	// Variadic is the component-tree convention: one creation call takes
	// the type, the props, and every child as an individual argument.
	Variadic
)

// String returns the string representation of the Convention.
func (c Convention) String() string {
	switch c {
	case Imperative:
		return "Imperative"
	case Variadic:
		return "Variadic"
	default:
		return "Unknown"
	}
}

// Node is the element surface an ImperativeBackend must produce. It is the
// minimal DOM-like mutation contract: a generic attribute setter, named
// sub-object access for style-like merges, and ordered child attachment.
type Node interface {
	// SetAttribute applies a single attribute or property.
	SetAttribute(key string, value any)

	// Field returns the mutable named sub-object (e.g. "style") so callers
	// can assign into it field by field. Implementations allocate on first
	// access.
	Field(name string) map[string]any

	// AppendChild attaches child after any existing children. A nil child
	// is the absence marker from zero-argument builder calls; what it
	// means is up to the implementation.
	AppendChild(child Node)
}

// ImperativeBackend creates elements DOM-style: a bare element per tag,
// plus text nodes to wrap string children before attachment.
type ImperativeBackend interface {
	CreateElement(tag string) (Node, error)
	CreateTextNode(text string) Node
}

// VariadicBackend creates elements component-tree-style in a single call.
// The tag may be a string or a function value representing a user-defined
// component type; interpretation of both tag and props belongs entirely to
// the backend.
type VariadicBackend interface {
	CreateElement(tag any, props Props, children ...any) (Element, error)
}
