package vtree

import (
	"fmt"

	"github.com/tagkit-dev/tagkit/pkg/hyper"
)

// Backend creates vtree nodes from hyper builder calls. It implements
// hyper.VariadicBackend.
type Backend struct{}

// CreateElement builds a node for the given tag. String tags produce
// element nodes; ComponentFunc tags are invoked with the call's props and
// children. Any other tag type is an error.
func (Backend) CreateElement(tag any, props hyper.Props, children ...any) (hyper.Element, error) {
	kids, err := convertChildren(children)
	if err != nil {
		return nil, err
	}

	switch t := tag.(type) {
	case string:
		if t == "" {
			return nil, fmt.Errorf("vtree: empty tag name")
		}
		return &Node{
			Kind:     KindElement,
			Tag:      t,
			Props:    props,
			Children: kids,
		}, nil
	case ComponentFunc:
		return t(props, kids), nil
	case func(hyper.Props, []*Node) *Node:
		return ComponentFunc(t)(props, kids), nil
	default:
		return nil, fmt.Errorf("vtree: unsupported element type %T", tag)
	}
}

// convertChildren flattens builder children into nodes. Strings become
// text nodes and nil markers are dropped, matching how conditional
// children are written against this backend.
func convertChildren(children []any) ([]*Node, error) {
	kids := make([]*Node, 0, len(children))
	for _, child := range children {
		switch c := child.(type) {
		case nil:
			continue
		case string:
			kids = append(kids, Text(c))
		case *Node:
			if c != nil {
				kids = append(kids, c)
			}
		case []*Node:
			for _, n := range c {
				if n != nil {
					kids = append(kids, n)
				}
			}
		default:
			return nil, fmt.Errorf("vtree: unsupported child type %T", child)
		}
	}
	return kids, nil
}
