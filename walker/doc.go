// Package walker provides deterministic depth-first traversal of document trees.
//
// Walk visits every node of a nested map[string]any / []any structure,
// including the root, invoking the visit callback before descending into
// children. Map children are visited in sorted key order (Go maps carry no
// insertion order); slice children by ascending index. Scalars and nil are
// visited as leaves.
//
// Each node is identified by a canonical path: the root is "$", a map child
// appends ".<key>" and a slice element appends "[<index>]".
//
// The first visit returning true halts the traversal immediately and Walk
// returns the matching node with its path. When the tree is exhausted without
// a match, Walk returns a nil *Match.
//
//	match, err := walker.Walk(ctx, doc, func(node any, path string) (bool, error) {
//		m, ok := node.(map[string]any)
//		return ok && m["$ref"] != nil, nil
//	})
//
// Visit callbacks may mutate the node they are handed; keys removed from a
// map during its own visit are not descended into.
package walker
