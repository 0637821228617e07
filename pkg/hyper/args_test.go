package hyper

import (
	"reflect"
	"testing"
)

func TestNormalizeListFirstWins(t *testing.T) {
	cs := []any{"a", "b"}

	cases := []struct {
		name string
		arg1 Arg
	}{
		{"absent", Arg{}},
		{"text", Text("ignored")},
		{"props", With(Props{"id": "ignored"})},
		{"list", List("ignored")},
	}

	for _, tc := range cases {
		props, children := Normalize(List(cs...), tc.arg1)
		if len(props) != 0 {
			t.Fatalf("%s: props should be empty, got %#v", tc.name, props)
		}
		if !reflect.DeepEqual(children, cs) {
			t.Fatalf("%s: children mismatch:\n got: %#v\nwant: %#v", tc.name, children, cs)
		}
	}
}

func TestNormalizeTextFirst(t *testing.T) {
	cases := []struct {
		name string
		arg1 Arg
	}{
		{"absent", Arg{}},
		{"list", List("ignored")},
		{"props", With(Props{"id": "ignored"})},
	}

	for _, tc := range cases {
		props, children := Normalize(Text("hello"), tc.arg1)
		if len(props) != 0 {
			t.Fatalf("%s: props should be empty, got %#v", tc.name, props)
		}
		if !reflect.DeepEqual(children, []any{"hello"}) {
			t.Fatalf("%s: children mismatch: %#v", tc.name, children)
		}
	}
}

func TestNormalizePropsThenList(t *testing.T) {
	p := Props{"id": "x"}
	cs := []any{"a", "b"}

	props, children := Normalize(With(p), List(cs...))
	if !reflect.DeepEqual(props, p) {
		t.Fatalf("props mismatch:\n got: %#v\nwant: %#v", props, p)
	}
	if !reflect.DeepEqual(children, cs) {
		t.Fatalf("children mismatch:\n got: %#v\nwant: %#v", children, cs)
	}
}

func TestNormalizeAbsentPropsThenList(t *testing.T) {
	// Rule 3 forwards arg0's mapping as-is: absent arg0 stays nil, it is
	// not replaced with an empty mapping.
	props, children := Normalize(Arg{}, List("a"))
	if props != nil {
		t.Fatalf("props should be nil, got %#v", props)
	}
	if !reflect.DeepEqual(children, []any{"a"}) {
		t.Fatalf("children mismatch: %#v", children)
	}
}

func TestNormalizePropsThenScalar(t *testing.T) {
	p := Props{"id": "x"}

	cases := []struct {
		name         string
		arg0, arg1   Arg
		wantProps    Props
		wantChildren []any
	}{
		{"props and text", With(p), Text("hello"), p, []any{"hello"}},
		{"props and absent", With(p), Arg{}, p, []any{nil}},
		{"absent and text", Arg{}, Text("hello"), Props{}, []any{"hello"}},
		{"both absent", Arg{}, Arg{}, Props{}, []any{nil}},
		{"props and props", With(p), With(Props{"b": 2}), p, []any{Props{"b": 2}}},
	}

	for _, tc := range cases {
		props, children := Normalize(tc.arg0, tc.arg1)
		if !reflect.DeepEqual(props, tc.wantProps) {
			t.Fatalf("%s: props mismatch:\n got: %#v\nwant: %#v", tc.name, props, tc.wantProps)
		}
		if !reflect.DeepEqual(children, tc.wantChildren) {
			t.Fatalf("%s: children mismatch:\n got: %#v\nwant: %#v", tc.name, children, tc.wantChildren)
		}
	}
}

func TestNormalizeZeroArgsKeepsMarker(t *testing.T) {
	// A builder called with no arguments produces a one-element children
	// list holding nil, not an empty list.
	props, children := Normalize(Arg{}, Arg{})
	if len(props) != 0 {
		t.Fatalf("props should be empty, got %#v", props)
	}
	if len(children) != 1 || children[0] != nil {
		t.Fatalf("children should be [nil], got %#v", children)
	}
}

func TestArgKindString(t *testing.T) {
	cases := []struct {
		kind argKind
		want string
	}{
		{argAbsent, "Absent"},
		{argList, "List"},
		{argText, "Text"},
		{argProps, "Props"},
		{argKind(99), "Unknown"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Fatalf("argKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
