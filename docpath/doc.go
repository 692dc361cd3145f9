// Package docpath addresses values inside nested document trees by string path.
//
// A path is a sequence of segments in dot/bracket notation navigating
// map[string]any and []any containers:
//
//   - .field or field (plain key)
//   - [0] (array index - bracketed bare digits only)
//   - ['key'] or ["key"] (quoted key; may contain '.', '[' and ']')
//
// Numeric-looking dot-notation keys are plain keys, never array indices:
// "a.0" addresses the key "0", while "a[0]" addresses array element zero.
// The empty path addresses the empty-string key on the root.
//
// # Quick Start
//
//	doc := map[string]any{}
//	doc, _ = docpath.Set(doc, "a[0].b", "x")        // {"a": [{"b": "x"}]}
//	v, ok := docpath.Get(doc, "a[0].b")             // "x", true
//	v = docpath.GetOr(doc, "a[0].missing", "dflt")  // "dflt"
//	doc, _ = docpath.Delete(doc, "a[0].b")
//
// Get distinguishes key existence from value truthiness: a key that is
// present with a nil value reports (nil, true), while an absent key reports
// (nil, false). Set and Delete return the mutated root, since addressing a
// root-level array element may replace the slice header.
package docpath
