// Package vtree is an in-memory virtual element tree and the variadic
// backend for hyper tag builders.
//
// Node is the building block, representing elements, text, fragments,
// components, and raw HTML. Backend implements hyper.VariadicBackend:
// string tags become element nodes, and ComponentFunc tags are invoked
// with the call's props and children to produce their own subtree.
//
//	set := hyper.NewVariadic(vtree.Backend{})
//	el, err := set.Tag("div")(hyper.With(hyper.Props{"class": "card"}),
//	    hyper.List("hello"))
//
// Trees render to HTML through the render package.
package vtree
