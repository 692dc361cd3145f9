package walker

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/nagaozen/schematools/schemaerrors"
)

// RootPath is the canonical path of the root node.
const RootPath = "$"

// DefaultMaxDepth is the maximum traversal depth when none is configured.
// This prevents stack overflow from deeply nested (but finite) structures.
const DefaultMaxDepth = 1000

// VisitFunc is invoked for every node before its children. Returning true
// halts the traversal; a non-nil error aborts it.
type VisitFunc func(node any, path string) (bool, error)

// Match is the node that halted a traversal, with its canonical path.
type Match struct {
	Node any
	Path string
}

// Option configures a walk.
type Option func(*config)

type config struct {
	maxDepth int
}

// WithMaxDepth sets the maximum traversal depth.
// If depth is not positive, it is silently ignored and the default is kept.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// Walk traverses root depth-first, invoking visit at every node including the
// root itself. It returns the first match, or nil when the tree is exhausted.
//
// Walk fails before visiting anything when visit is nil, and aborts when the
// context is cancelled, the configured depth is exceeded, or visit returns an
// error.
func Walk(ctx context.Context, root any, visit VisitFunc, opts ...Option) (*Match, error) {
	if visit == nil {
		return nil, &schemaerrors.PathError{Message: "visit function must not be nil"}
	}

	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	return walk(ctx, root, RootPath, 0, &cfg, visit)
}

func walk(ctx context.Context, node any, path string, depth int, cfg *config, visit VisitFunc) (*Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > cfg.maxDepth {
		return nil, &schemaerrors.ResourceLimitError{
			ResourceType: "walk_depth",
			Limit:        int64(cfg.maxDepth),
			Actual:       int64(depth),
			Message:      "structure too deeply nested",
		}
	}

	matched, err := visit(node, path)
	if err != nil {
		return nil, err
	}
	if matched {
		return &Match{Node: node, Path: path}, nil
	}

	switch v := node.(type) {
	case map[string]any:
		// Keys are snapshotted after the visit so that entries removed by
		// the callback are not descended into.
		for _, key := range slices.Sorted(maps.Keys(v)) {
			child, ok := v[key]
			if !ok {
				continue
			}
			m, err := walk(ctx, child, path+"."+key, depth+1, cfg, visit)
			if err != nil || m != nil {
				return m, err
			}
		}

	case []any:
		for i, child := range v {
			m, err := walk(ctx, child, fmt.Sprintf("%s[%d]", path, i), depth+1, cfg, visit)
			if err != nil || m != nil {
				return m, err
			}
		}
	}

	return nil, nil
}
