// Package loader loads, localizes, and composes JSON Schema documents.
//
// Load starts from a root schema URI, discovers every externally referenced
// sub-schema transitively, and returns a single self-contained composition:
//
//	{ "$defs": { <key>: <document>, ... }, "$ref": "#/$defs/<rootKey>" }
//
// Cross-document references are rewritten into the local $defs namespace,
// locally embedded $defs are hoisted into it, and circular or self
// references terminate through a per-call memo table. Keys derive from the
// resolved document URI with every path separator replaced by a colon.
//
//	result, err := loader.Load(ctx, "root.schema.json", "file:///schemas/",
//		loader.WithProvider("file", loader.NewFileProvider("/schemas")),
//		loader.WithLang("fr-FR"),
//	)
//
// # Content Providers
//
// All I/O goes through the Provider interface, one implementation per URI
// scheme. FileProvider and HTTPProvider are bundled; any other scheme plugs
// in via WithProvider. A scheme without a provider fails the whole call with
// schemaerrors.ProtocolError.
//
// Provider calls are awaited sequentially: no two provider invocations run
// concurrently inside one Load call, so the definition table needs no
// locking. Concurrent Load calls share nothing.
//
// # Localization
//
// Right after a document is fetched, the same provider is asked for a
// per-language sidecar (conventionally <name>.<lang>.json next to
// <name>.schema.json). Its entries are merged into the document by path
// before any reference rewriting. A missing sidecar is never an error.
//
// # Reference semantics
//
// Only a string-valued $ref is a schema link. A $ref holding any other type
// is a data field that happens to share the name and is preserved verbatim.
// Fragment references ("#...") rewrite against the document being visited
// and never trigger a fetch.
package loader
