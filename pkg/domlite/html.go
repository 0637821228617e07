package domlite

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// selfClosing are elements serialized without a closing tag.
var selfClosing = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// OuterHTML serializes the element and its subtree. Attributes and named
// sub-objects are emitted in sorted order for deterministic output; nil
// child markers are skipped.
func (e *Elem) OuterHTML() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e *Elem) writeTo(b *strings.Builder) {
	if e.IsText {
		b.WriteString(html.EscapeString(e.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(e.TagName)
	e.writeAttrs(b)

	if selfClosing[e.TagName] {
		b.WriteByte('>')
		return
	}
	b.WriteByte('>')

	for _, child := range e.ChildNodes {
		el, ok := child.(*Elem)
		if !ok || el == nil {
			continue
		}
		el.writeTo(b)
	}

	b.WriteString("</")
	b.WriteString(e.TagName)
	b.WriteByte('>')
}

func (e *Elem) writeAttrs(b *strings.Builder) {
	keys := make([]string, 0, len(e.Attributes))
	for key := range e.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := e.Attributes[key]
		if bv, ok := value.(bool); ok {
			if bv {
				fmt.Fprintf(b, " %s", key)
			}
			continue
		}
		fmt.Fprintf(b, ` %s="%s"`, key, html.EscapeString(fmt.Sprintf("%v", value)))
	}

	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := e.fields[name]
		if len(field) == 0 {
			continue
		}
		subKeys := make([]string, 0, len(field))
		for k := range field {
			subKeys = append(subKeys, k)
		}
		sort.Strings(subKeys)

		parts := make([]string, 0, len(subKeys))
		for _, k := range subKeys {
			parts = append(parts, fmt.Sprintf("%s: %v", k, field[k]))
		}
		fmt.Fprintf(b, ` %s="%s"`, name, html.EscapeString(strings.Join(parts, "; ")))
	}
}
