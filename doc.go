// Package schematools provides tools for composing JSON Schema documents.
//
// schematools loads a root schema identified by a URI, discovers every
// externally referenced sub-schema transitively, and emits a single
// self-contained document in which all cross-document references are
// rewritten into a local $defs namespace. Circular and self references
// compose without infinite recursion, and per-language overlay documents
// (localization sidecars) are merged into the schema tree before the
// composition is returned.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - docpath: address values inside nested document trees by string path
//   - walker: deterministic depth-first traversal of document trees
//   - loader: load, localize, and compose schema documents
//
// # Quick Start
//
// Compose a schema together with all of its external references:
//
//	import "github.com/nagaozen/schematools/loader"
//
//	result, err := loader.Load(ctx, "root.schema.json", "file:///schemas/",
//		loader.WithProvider("file", loader.NewFileProvider("/schemas")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := json.Marshal(result)
//
// The result always has the shape {"$defs": {...}, "$ref": "#/$defs/<root>"},
// never the root document inlined, so that schemas referencing themselves
// compose without infinite nesting.
//
// # Content Providers
//
// All I/O goes through the loader.Provider interface, keyed by URI scheme.
// The loader ships file and HTTP providers; custom schemes plug in the same
// way. A scheme without a registered provider fails with
// schemaerrors.ProtocolError.
package schematools
