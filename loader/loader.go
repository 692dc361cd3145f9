package loader

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/nagaozen/schematools/docpath"
	"github.com/nagaozen/schematools/schemaerrors"
	"github.com/nagaozen/schematools/walker"
)

// LoadSchema fetches and localizes a single schema document.
//
// The uri is resolved against basepath, the matching provider is invoked,
// and the localization sidecar for the configured language is merged into
// the document by path. A missing or failing sidecar is not an error.
func LoadSchema(ctx context.Context, uri, basepath string, opts ...Option) (map[string]any, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	address, scheme, err := resolveAddress(uri, basepath)
	if err != nil {
		return nil, err
	}
	return fetchDocument(ctx, cfg, address, scheme)
}

// Load composes the document identified by uri together with every
// externally referenced sub-schema, transitively.
//
// The result is always { $defs: <table>, $ref: "#/$defs/<rootKey>" }. Every
// distinct resolved document appears exactly once in the table, in discovery
// order, regardless of how many times it is referenced; cross-document and
// fragment references inside the table entries are rewritten to local
// "#/$defs/..." references. Locally embedded $defs are hoisted into the
// table under "<document key>:$defs:<name>" and removed from their original
// location.
//
// An unsupported protocol or a failing primary fetch aborts the whole call;
// there is no partial result. Each call starts cold: nothing is cached
// across invocations.
func Load(ctx context.Context, uri, basepath string, opts ...Option) (*Composition, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:      cfg,
		defs:     NewDefinitions(),
		basepath: basepath,
	}

	address, scheme, err := resolveAddress(uri, basepath)
	if err != nil {
		return nil, err
	}

	rootKey := referenceKey(address)
	doc, err := s.fetch(ctx, address, scheme)
	if err != nil {
		return nil, err
	}
	s.defs.Set(rootKey, doc)

	if err := s.resolve(ctx, doc, rootKey); err != nil {
		return nil, err
	}

	cfg.logger.Debug("composition complete", "root", rootKey, "documents", s.defs.Len())
	return &Composition{Defs: s.defs, Ref: defsRef(rootKey)}, nil
}

// session owns the state of exactly one Load invocation: the definition
// table and the fetch budget. Nothing in it crosses calls.
type session struct {
	cfg      *config
	defs     *Definitions
	basepath string
	fetched  int
}

// fetch loads one document through the session, enforcing the document
// budget.
func (s *session) fetch(ctx context.Context, address, scheme string) (map[string]any, error) {
	if s.fetched >= s.cfg.maxDocuments {
		return nil, &schemaerrors.ResourceLimitError{
			ResourceType: "loaded_documents",
			Limit:        int64(s.cfg.maxDocuments),
			Actual:       int64(s.fetched + 1),
			Message:      "too many external references",
		}
	}
	s.fetched++
	return fetchDocument(ctx, s.cfg, address, scheme)
}

// resolve walks doc with the reference-discovery callback. ownerKey
// identifies the document for anchor rewriting and $defs hoisting.
func (s *session) resolve(ctx context.Context, doc any, ownerKey string) error {
	_, err := walker.Walk(ctx, doc, func(node any, _ string) (bool, error) {
		return false, s.discover(ctx, node, ownerKey)
	}, walker.WithMaxDepth(s.cfg.maxDepth))
	return err
}

// discover inspects one visited node for $defs to hoist and $ref values to
// rewrite, fetching newly referenced documents as they surface.
func (s *session) discover(ctx context.Context, node any, ownerKey string) error {
	m, ok := node.(map[string]any)
	if !ok {
		return nil
	}

	if err := s.hoistDefs(ctx, m, ownerKey); err != nil {
		return err
	}

	ref, ok := m["$ref"].(string)
	if !ok {
		// Absent, or a data field that happens to be named $ref.
		return nil
	}

	if strings.HasPrefix(ref, "#") {
		// Internal anchor: rewrite against the owning document's
		// namespace, never fetch.
		m["$ref"] = s.rewriteAnchor(ref, ownerKey)
		return nil
	}

	address, scheme, err := resolveAddress(ref, s.basepath)
	if err != nil {
		return err
	}

	key := referenceKey(address)
	if !s.defs.Has(key) {
		doc, err := s.fetch(ctx, address, scheme)
		if err != nil {
			return err
		}
		s.defs.Set(key, doc)
		if err := s.resolve(ctx, doc, key); err != nil {
			return err
		}
	}

	s.cfg.logger.Debug("rewrote external reference", "ref", ref, "key", key)
	m["$ref"] = defsRef(key)
	return nil
}

// hoistDefs lifts every local definition of the node into the global table
// and strips $defs from the node, exactly once, so the definitions are never
// re-discovered as ordinary data. Hoisted definitions are resolved in turn,
// since their own references must end up local as well.
func (s *session) hoistDefs(ctx context.Context, m map[string]any, ownerKey string) error {
	defsVal, ok := m["$defs"]
	if !ok {
		return nil
	}
	local, ok := defsVal.(map[string]any)
	if !ok {
		// A data field named $defs, not a definition container.
		return nil
	}

	delete(m, "$defs")
	for _, name := range slices.Sorted(maps.Keys(local)) {
		key := anchorKey(ownerKey, name)
		if s.defs.Has(key) {
			continue
		}
		s.defs.Set(key, local[name])
		s.cfg.logger.Debug("hoisted local definition", "name", name, "key", key)
		if err := s.resolve(ctx, local[name], ownerKey); err != nil {
			return err
		}
	}
	return nil
}

// rewriteAnchor rewrites a fragment reference against the owning document's
// anchor namespace. "#" and "#/" reference the owning document itself.
func (s *session) rewriteAnchor(ref, ownerKey string) string {
	name := anchorName(ref)
	if name == "" {
		return defsRef(ownerKey)
	}
	return defsRef(anchorKey(ownerKey, name))
}

// fetchDocument loads and localizes one document: provider lookup by scheme,
// primary fetch, then the localization sidecar merge.
func fetchDocument(ctx context.Context, cfg *config, address, scheme string) (map[string]any, error) {
	provider, ok := cfg.providers[scheme]
	if !ok {
		return nil, &schemaerrors.ProtocolError{Scheme: scheme}
	}

	opts := cfg.fetchOptions()
	raw, err := provider.Fetch(ctx, address, opts)
	if err != nil {
		return nil, &schemaerrors.FetchError{Address: address, Scheme: scheme, Cause: err}
	}
	doc, ok := raw.(map[string]any)
	if !ok || doc == nil {
		return nil, &schemaerrors.FetchError{
			Address: address,
			Scheme:  scheme,
			Cause:   errors.New("provider returned no document"),
		}
	}

	// Localization is best effort: a thrown error or false-ish result
	// means "no localization".
	sidecar := localizationAddress(address, cfg.lang)
	overlay, err := provider.Fetch(ctx, sidecar, opts)
	if err != nil || overlay == nil {
		cfg.logger.Debug("no localization overlay", "address", sidecar, "lang", cfg.lang)
		return doc, nil
	}

	applyOverlay(doc, overlay, cfg.logger)
	return doc, nil
}

// applyOverlay merges a localization overlay into doc. A map overlay applies
// each key as a path; a list overlay applies each {path, value} pair in
// order. Malformed entries are skipped, never fatal.
func applyOverlay(doc map[string]any, overlay any, logger Logger) {
	switch o := overlay.(type) {
	case map[string]any:
		for _, path := range slices.Sorted(maps.Keys(o)) {
			if _, err := docpath.Set(doc, path, o[path]); err != nil {
				logger.Warn("skipping localization entry", "path", path, "error", err)
			}
		}

	case []any:
		for _, item := range o {
			pair, ok := item.(map[string]any)
			if !ok {
				continue
			}
			path, ok := pair["path"].(string)
			if !ok {
				continue
			}
			if _, err := docpath.Set(doc, path, pair["value"]); err != nil {
				logger.Warn("skipping localization entry", "path", path, "error", err)
			}
		}
	}
}
