package hyper

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeNode records the mutations the imperative protocol performs on it.
type fakeNode struct {
	tag    string
	text   string
	attrs  map[string]any
	fields map[string]map[string]any
	kids   []Node
}

func (n *fakeNode) SetAttribute(key string, value any) {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[key] = value
}

func (n *fakeNode) Field(name string) map[string]any {
	if n.fields == nil {
		n.fields = make(map[string]map[string]any)
	}
	if n.fields[name] == nil {
		n.fields[name] = make(map[string]any)
	}
	return n.fields[name]
}

func (n *fakeNode) AppendChild(child Node) {
	n.kids = append(n.kids, child)
}

// fakeDOM is an imperative backend that fails on tags listed in bad.
type fakeDOM struct {
	bad map[string]error
}

func (d *fakeDOM) CreateElement(tag string) (Node, error) {
	if err := d.bad[tag]; err != nil {
		return nil, err
	}
	return &fakeNode{tag: tag}, nil
}

func (d *fakeDOM) CreateTextNode(text string) Node {
	return &fakeNode{text: text}
}

// fakeFactory records every variadic creation call it receives.
type fakeFactory struct {
	calls []fakeCall
	err   error
}

type fakeCall struct {
	tag      any
	props    Props
	children []any
}

func (f *fakeFactory) CreateElement(tag any, props Props, children ...any) (Element, error) {
	f.calls = append(f.calls, fakeCall{tag: tag, props: props, children: children})
	if f.err != nil {
		return nil, f.err
	}
	return "created", nil
}

func TestConstructImperativeAttrsAndChildren(t *testing.T) {
	set := NewImperative(&fakeDOM{})

	el, err := set.Tag("div")(With(Props{"id": "x"}), List("a", "b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node := el.(*fakeNode)
	if node.tag != "div" {
		t.Fatalf("tag mismatch: %q", node.tag)
	}
	if !reflect.DeepEqual(node.attrs, map[string]any{"id": "x"}) {
		t.Fatalf("attrs mismatch: %#v", node.attrs)
	}
	if len(node.kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.kids))
	}
	first := node.kids[0].(*fakeNode)
	second := node.kids[1].(*fakeNode)
	if first.text != "a" || second.text != "b" {
		t.Fatalf("children out of order: %q, %q", first.text, second.text)
	}
}

// seededDOM creates elements whose style field already has entries, to
// observe that merges are shallow and leave unrelated sub-keys alone.
type seededDOM struct {
	fakeDOM
}

func (d *seededDOM) CreateElement(tag string) (Node, error) {
	node := &fakeNode{tag: tag}
	node.Field("style")["margin"] = "0"
	return node, nil
}

func TestConstructImperativeStyleMerge(t *testing.T) {
	set := NewImperative(&seededDOM{})

	el, err := set.Tag("div")(With(Props{"style": map[string]any{"color": "red"}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node := el.(*fakeNode)
	if node.Field("style")["color"] != "red" {
		t.Fatalf("style.color mismatch: %#v", node.Field("style"))
	}
	if node.Field("style")["margin"] != "0" {
		t.Fatalf("pre-existing style.margin clobbered: %#v", node.Field("style"))
	}
	if len(node.attrs) != 0 {
		t.Fatalf("mapping props must not reach SetAttribute: %#v", node.attrs)
	}
}

func TestConstructImperativeNilPropSkipped(t *testing.T) {
	set := NewImperative(&fakeDOM{})

	el, err := set.Tag("div")(With(Props{"id": nil, "class": "card"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node := el.(*fakeNode)
	if !reflect.DeepEqual(node.attrs, map[string]any{"class": "card"}) {
		t.Fatalf("nil-valued prop should be skipped: %#v", node.attrs)
	}
}

func TestConstructImperativeElementChild(t *testing.T) {
	set := NewImperative(&fakeDOM{})

	inner, err := set.Tag("span")(Text("in"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	el, err := set.Tag("div")(List(inner, "tail"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node := el.(*fakeNode)
	if len(node.kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.kids))
	}
	if node.kids[0] != inner {
		t.Fatalf("element child should be attached directly")
	}
	if node.kids[1].(*fakeNode).text != "tail" {
		t.Fatalf("string child should become a text node")
	}
}

func TestConstructImperativeMarkerForwarded(t *testing.T) {
	set := NewImperative(&fakeDOM{})

	el, err := set.Tag("div")()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node := el.(*fakeNode)
	if len(node.kids) != 1 || node.kids[0] != nil {
		t.Fatalf("marker should reach AppendChild as nil: %#v", node.kids)
	}
}

func TestConstructImperativeErrors(t *testing.T) {
	backendErr := errors.New("unsupported tag")
	set := NewImperative(&fakeDOM{bad: map[string]error{"blink": backendErr}})

	if _, err := set.Tag("blink")(); !errors.Is(err, backendErr) {
		t.Fatalf("backend error should propagate unmodified, got %v", err)
	}

	if _, err := set.Builder(func() {})(); err == nil || !strings.Contains(err.Error(), "string tag") {
		t.Fatalf("non-string tag should error, got %v", err)
	}

	if _, err := set.Tag("div")(List(42)); err == nil || !strings.Contains(err.Error(), "child") {
		t.Fatalf("unattachable child should error, got %v", err)
	}
}

func TestConstructVariadicSpreadsChildren(t *testing.T) {
	backend := &fakeFactory{}
	set := NewVariadic(backend)

	el, err := set.Tag("div")(With(Props{"a": 1}), List("x", "y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el != Element("created") {
		t.Fatalf("backend result should be returned directly, got %#v", el)
	}

	want := []fakeCall{{tag: "div", props: Props{"a": 1}, children: []any{"x", "y"}}}
	if !reflect.DeepEqual(backend.calls, want) {
		t.Fatalf("call mismatch:\n got: %#v\nwant: %#v", backend.calls, want)
	}
}

func TestConstructVariadicNoPropProtocol(t *testing.T) {
	backend := &fakeFactory{}
	set := NewVariadic(backend)

	// Nested mappings and nil values pass through untouched; the backend
	// owns prop interpretation entirely.
	props := Props{"style": Props{"color": "red"}, "id": nil}
	if _, err := set.Tag("div")(With(props)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(backend.calls) != 1 {
		t.Fatalf("expected exactly one creation call, got %d", len(backend.calls))
	}
	if !reflect.DeepEqual(backend.calls[0].props, props) {
		t.Fatalf("props should pass through unmodified: %#v", backend.calls[0].props)
	}
	if !reflect.DeepEqual(backend.calls[0].children, []any{nil}) {
		t.Fatalf("marker should pass through unmodified: %#v", backend.calls[0].children)
	}
}

func TestConstructVariadicErrorPropagates(t *testing.T) {
	backendErr := errors.New("bad type")
	set := NewVariadic(&fakeFactory{err: backendErr})

	if _, err := set.Tag("div")(); !errors.Is(err, backendErr) {
		t.Fatalf("backend error should propagate unmodified, got %v", err)
	}
}

func TestConstructVariadicComponentTag(t *testing.T) {
	backend := &fakeFactory{}
	set := NewVariadic(backend)

	component := func() {}
	if _, err := set.Builder(component)(Text("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := backend.calls[0].tag
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(component).Pointer() {
		t.Fatalf("function tag should pass through, got %#v", got)
	}
}
