// Package domlite is an in-memory DOM-style document and the imperative
// backend for hyper tag builders.
//
// A Document creates bare elements and text nodes; hyper's imperative
// protocol then mutates them attribute by attribute and child by child.
// Elem records exactly what was applied, in order, which makes it suitable
// both as a lightweight rendering target and as a test double for code
// built on the imperative convention.
//
//	set := hyper.NewImperative(domlite.NewDocument())
//	el, err := set.Tag("div")(hyper.With(hyper.Props{"id": "x"}),
//	    hyper.Text("hello"))
//	html := el.(*domlite.Elem).OuterHTML()
package domlite
