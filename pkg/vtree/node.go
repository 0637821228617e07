package vtree

import "github.com/tagkit-dev/tagkit/pkg/hyper"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a virtual element tree node.
type Node struct {
	Kind     Kind        // Node type
	Tag      string      // Element tag name (e.g. "div")
	Props    hyper.Props // Attributes and properties
	Children []*Node     // Child nodes
	Text     string      // For KindText and KindRaw
}

// ComponentFunc is a user-defined component type. A builder minted for a
// ComponentFunc hands it the call's props and converted children and uses
// whatever subtree it returns.
type ComponentFunc func(props hyper.Props, children []*Node) *Node
