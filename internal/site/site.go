// Package site builds the tagkit gallery page: one demo document that
// exercises every tag in the fixed builder table through the public hyper
// API, used by the render and serve commands.
package site

import (
	"github.com/tagkit-dev/tagkit/pkg/hyper"
	"github.com/tagkit-dev/tagkit/pkg/vtree"
)

// gallery threads one builder Set through the page construction and
// collects the first error so call sites stay declarative.
type gallery struct {
	set *hyper.Set
	err error
}

// el invokes the builder for tag, recording the first failure.
func (g *gallery) el(tag string, args ...hyper.Arg) *vtree.Node {
	if g.err != nil {
		return nil
	}
	el, err := g.set.Tag(tag)(args...)
	if err != nil {
		g.err = err
		return nil
	}
	return el.(*vtree.Node)
}

// component invokes a minted builder for a user-defined component type.
func (g *gallery) component(fn vtree.ComponentFunc, args ...hyper.Arg) *vtree.Node {
	if g.err != nil {
		return nil
	}
	el, err := g.set.Builder(fn)(args...)
	if err != nil {
		g.err = err
		return nil
	}
	return el.(*vtree.Node)
}

// card is a user-defined component: a titled section wrapping its children.
func card(props hyper.Props, children []*vtree.Node) *vtree.Node {
	title, _ := props["title"].(string)
	kids := []*vtree.Node{
		{Kind: vtree.KindElement, Tag: "h2", Children: []*vtree.Node{vtree.Text(title)}},
	}
	return &vtree.Node{
		Kind:     vtree.KindElement,
		Tag:      "section",
		Props:    hyper.Props{"class": "card"},
		Children: append(kids, children...),
	}
}

// Page builds the gallery document with the given title.
func Page(title string) (*vtree.Node, error) {
	g := &gallery{set: hyper.NewVariadic(vtree.Backend{})}

	head := g.el("head", hyper.List(
		g.el("title", hyper.Text(title)),
	))

	headings := g.el("div", hyper.List(
		g.el("h1", hyper.Text(title)),
		g.el("h2", hyper.Text("Headings")),
		g.el("h3", hyper.Text("Level three")),
		g.el("h4", hyper.Text("Level four")),
		g.el("h5", hyper.Text("Level five")),
		g.el("h6", hyper.Text("Level six")),
	))

	text := g.el("p", hyper.With(hyper.Props{"style": hyper.Props{"color": "#333"}}), hyper.List(
		"Inline text: ",
		g.el("b", hyper.Text("bold")),
		", ",
		g.el("i", hyper.Text("italic")),
		", ",
		g.el("em", hyper.Text("emphasis")),
		", ",
		g.el("code", hyper.Text("code()")),
		" and a ",
		g.el("a", hyper.With(hyper.Props{"href": "https://example.com"}), hyper.Text("link")),
		".",
	))

	lists := g.el("div", hyper.List(
		g.el("ul", hyper.List(
			g.el("li", hyper.Text("unordered one")),
			g.el("li", hyper.Text("unordered two")),
		)),
		g.el("ol", hyper.List(
			g.el("li", hyper.Text("ordered one")),
			g.el("li", hyper.Text("ordered two")),
		)),
	))

	// Row and cell tags sit outside the fixed table; Tag mints them.
	table := g.el("table", hyper.List(
		g.el("tr", hyper.List(
			g.el("td", hyper.Text("cell one")),
			g.el("td", hyper.Text("cell two")),
		)),
	))

	form := g.el("form", hyper.With(hyper.Props{"action": "/", "method": "get"}), hyper.List(
		g.el("input", hyper.With(hyper.Props{"type": "text", "name": "q", "placeholder": "search"})),
		g.el("button", hyper.Text("Go")),
	))

	media := g.el("div", hyper.List(
		g.el("img", hyper.With(hyper.Props{"src": "/logo.png", "alt": "logo"})),
		g.el("br"),
		g.el("hr"),
		g.el("pre", hyper.Text("preformatted\n  block")),
		g.el("span", hyper.Text("a span")),
	))

	custom := g.component(card,
		hyper.With(hyper.Props{"title": "Custom component"}),
		hyper.Text("Components are function-valued tags minted with Builder."),
	)

	body := g.el("body", hyper.List(
		headings,
		text,
		lists,
		table,
		form,
		media,
		custom,
	))

	doc := g.el("html", hyper.With(hyper.Props{"lang": "en"}), hyper.List(head, body))
	if g.err != nil {
		return nil, g.err
	}
	return doc, nil
}
