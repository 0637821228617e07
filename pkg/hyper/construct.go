package hyper

import "fmt"

// construct performs the backend creation call for one normalized builder
// invocation. Backend errors propagate unmodified; construct itself errors
// only where Go's type system forces a decision the source of the call got
// wrong (a non-string tag against a DOM-style backend, a child value that
// is neither text nor an element).
func (s *Set) construct(tag any, props Props, children []any) (Element, error) {
	if s.convention == Variadic {
		return s.variadic.CreateElement(tag, props, children...)
	}

	name, ok := tag.(string)
	if !ok {
		return nil, fmt.Errorf("hyper: imperative backend requires a string tag, got %T", tag)
	}

	el, err := s.imperative.CreateElement(name)
	if err != nil {
		return nil, err
	}

	for key, value := range props {
		if value == nil {
			continue
		}
		if sub, ok := subMapping(value); ok {
			field := el.Field(key)
			for k, v := range sub {
				field[k] = v
			}
			continue
		}
		el.SetAttribute(key, value)
	}

	for _, child := range children {
		switch c := child.(type) {
		case nil:
			// Absence marker, forwarded as-is.
			el.AppendChild(nil)
		case string:
			el.AppendChild(s.imperative.CreateTextNode(c))
		case Node:
			el.AppendChild(c)
		default:
			return nil, fmt.Errorf("hyper: cannot attach %T as a child", child)
		}
	}

	return el, nil
}

// subMapping reports whether a prop value is a plain mapping, the signal
// for a one-level sub-object merge instead of a SetAttribute call.
func subMapping(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case Props:
		return v, true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}
