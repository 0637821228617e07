package hyper

// Props holds element attributes and properties. Values may be primitives,
// nil (meaning "skip"), or nested map[string]any values interpreted as
// style-like sub-assignments by imperative backends.
type Props map[string]any

// Element is an opaque value produced by a backend. hyper never inspects
// or mutates one except to attach it as a child through the backend.
type Element any

// argKind discriminates the shapes an Arg can take.
type argKind uint8

const (
	argAbsent argKind = iota // zero value: argument not provided
	argList                  // ordered child sequence
	argText                  // single string child
	argProps                 // props mapping
)

// String returns the string representation of the argKind.
func (k argKind) String() string {
	switch k {
	case argAbsent:
		return "Absent"
	case argList:
		return "List"
	case argText:
		return "Text"
	case argProps:
		return "Props"
	default:
		return "Unknown"
	}
}

// Arg is one positional argument to a Builder. It is a closed union over
// the four shapes the resolution table distinguishes; construct values with
// List, Text, or With. The zero Arg means the argument was not provided.
type Arg struct {
	kind  argKind
	list  []any
	text  string
	props Props
}

// List wraps an ordered sequence of children. Entries may be strings,
// backend elements, or nil.
func List(children ...any) Arg {
	return Arg{kind: argList, list: children}
}

// Text wraps a single string child.
func Text(s string) Arg {
	return Arg{kind: argText, text: s}
}

// With wraps a props mapping.
func With(p Props) Arg {
	return Arg{kind: argProps, props: p}
}

// value returns the Arg's payload as a child entry. An absent Arg yields
// nil, the absence marker.
func (a Arg) value() any {
	switch a.kind {
	case argText:
		return a.text
	case argProps:
		return a.props
	case argList:
		return a.list
	default:
		return nil
	}
}

// Normalize classifies two positional builder arguments into a props
// mapping and a flat ordered children list. Resolution is by shape, first
// match wins:
//
//  1. arg0 is a list: props are empty, arg0 is the children list as-is.
//  2. arg0 is text: props are empty, children are [text].
//  3. arg1 is a list: arg0's mapping (nil when absent) and arg1 as-is.
//  4. otherwise: arg0's mapping (empty when absent) and [arg1's value],
//     where an absent arg1 contributes a single nil entry.
//
// Rule 4 means a builder invoked with no arguments yields a one-element
// children list holding nil. That marker is forwarded to the backend
// unchanged; whether it means anything is backend-defined.
func Normalize(arg0, arg1 Arg) (Props, []any) {
	switch {
	case arg0.kind == argList:
		return Props{}, arg0.list
	case arg0.kind == argText:
		return Props{}, []any{arg0.text}
	case arg1.kind == argList:
		return arg0.props, arg1.list
	default:
		props := arg0.props
		if props == nil {
			props = Props{}
		}
		return props, []any{arg1.value()}
	}
}
