// Package render converts vtree node trees into HTML strings or streams.
//
// It handles the aspects of producing valid, secure HTML output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Map-valued props rendered as style-like declaration strings
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.New(render.Config{})
//	html, err := renderer.ToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.New(render.Config{})
//	err := renderer.ToWriter(w, node)
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted using
// KindRaw nodes, but should only be used with trusted content.
package render
