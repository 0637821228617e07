// Package hyper builds sets of tag-named element builder functions over a
// pluggable element-creation backend.
//
// A Set binds one backend and produces one Builder per tag name. A Builder
// takes up to two positional arguments (props, children, or both, in any of
// the accepted shapes) and returns whatever element value the backend
// constructs:
//
//	set := hyper.NewVariadic(vtree.Backend{})
//	div := set.Tag("div")
//
//	div(hyper.List("hello"))                                // children only
//	div(hyper.Text("hello"))                                // single text child
//	div(hyper.With(hyper.Props{"id": "x"}), hyper.Text("hello")) // props + child
//
// # Argument Shapes
//
// Builder arguments are Arg values, a closed union of the four shapes the
// resolution table distinguishes: List (an ordered child sequence), Text
// (a single string child), With (a props mapping), and the zero Arg
// (absent). Which argument is props and which is children is resolved by
// position and shape; see Normalize.
//
// # Backends
//
// Two calling conventions are supported, chosen explicitly when the Set is
// constructed. An ImperativeBackend models a DOM-style API: elements are
// created bare, then mutated attribute by attribute and child by child. A
// VariadicBackend models component-tree libraries that take the whole call
// in one shot as (type, props, children...). The backend owns element
// semantics entirely; hyper only orchestrates the call and propagates
// backend errors unmodified.
package hyper
