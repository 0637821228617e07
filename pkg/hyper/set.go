package hyper

// Builder constructs one element from up to two positional arguments. The
// argument shapes are resolved by Normalize; arguments beyond the second
// are ignored. A Builder closes over its tag and its Set's backend and
// holds no other state, so concurrent calls are safe as long as the
// backend's own creation call is.
type Builder func(args ...Arg) (Element, error)

// tags is the fixed table of canonical tag names every Set binds.
var tags = [...]string{
	"a", "b", "body", "br", "button", "code", "div", "em", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "hr", "html", "i",
	"img", "input", "li", "ol", "p", "pre", "span", "table", "ul",
}

// Set is a factory of tag builders bound to one backend and one calling
// convention. A Set is immutable after construction.
type Set struct {
	convention Convention
	imperative ImperativeBackend
	variadic   VariadicBackend
	builders   map[string]Builder
}

// NewImperative builds a Set over a DOM-style backend.
func NewImperative(backend ImperativeBackend) *Set {
	s := &Set{convention: Imperative, imperative: backend}
	s.bind()
	return s
}

// NewVariadic builds a Set over a component-tree-style backend.
func NewVariadic(backend VariadicBackend) *Set {
	s := &Set{convention: Variadic, variadic: backend}
	s.bind()
	return s
}

// bind populates the fixed tag table, one independent builder per name.
func (s *Set) bind() {
	s.builders = make(map[string]Builder, len(tags))
	for _, tag := range tags {
		s.builders[tag] = s.Builder(tag)
	}
}

// Convention returns the calling convention the Set was constructed with.
func (s *Set) Convention() Convention {
	return s.convention
}

// Builder mints a builder for an arbitrary tag identifier. Besides strings,
// a variadic backend may accept function values representing user-defined
// component types; what identifiers are valid is the backend's call.
func (s *Set) Builder(tag any) Builder {
	return func(args ...Arg) (Element, error) {
		var arg0, arg1 Arg
		if len(args) > 0 {
			arg0 = args[0]
		}
		if len(args) > 1 {
			arg1 = args[1]
		}
		props, children := Normalize(arg0, arg1)
		return s.construct(tag, props, children)
	}
}

// Tag returns the builder for a tag name, minting one on demand for names
// outside the fixed table.
func (s *Set) Tag(name string) Builder {
	if b, ok := s.builders[name]; ok {
		return b
	}
	return s.Builder(name)
}

// Builders returns the fixed tag table as a name-to-builder mapping. The
// returned map is a copy; mutating it does not affect the Set.
func (s *Set) Builders() map[string]Builder {
	out := make(map[string]Builder, len(s.builders))
	for name, b := range s.builders {
		out[name] = b
	}
	return out
}

// Tags returns the fixed canonical tag names in table order.
func Tags() []string {
	out := make([]string, len(tags))
	copy(out, tags[:])
	return out
}
