package docpath

import (
	"fmt"
	"strconv"

	"github.com/nagaozen/schematools/schemaerrors"
)

// Get walks the path and returns the addressed value together with a
// key-existence flag. A key that is present with a nil value reports
// (nil, true); an absent key or a nil/scalar intermediate reports
// (nil, false).
func Get(root any, path string) (any, bool) {
	segments, err := Parse(path)
	if err != nil {
		return nil, false
	}

	current := root
	for _, seg := range segments {
		switch c := current.(type) {
		case map[string]any:
			v, ok := c[segmentKey(seg)]
			if !ok {
				return nil, false
			}
			current = v

		case []any:
			idx, ok := seg.(IndexSegment)
			if !ok || idx.Index < 0 || idx.Index >= len(c) {
				return nil, false
			}
			current = c[idx.Index]

		default:
			return nil, false
		}
	}
	return current, true
}

// GetOr returns the value addressed by path, or def when the path does not
// exist. Existence is a key test, not a truthiness test: a present nil value
// is returned as nil, not as def.
func GetOr(root any, path string, def any) any {
	v, ok := Get(root, path)
	if !ok {
		return def
	}
	return v
}

// Set assigns value at path, creating intermediate containers as needed.
// A missing intermediate becomes a slice when the next segment is an array
// index, a map otherwise; scalar intermediates are overwritten. The mutated
// root is returned, since growing a root-level slice replaces its header.
// Set fails only when root is not a map or slice, or the path is malformed.
func Set(root any, path string, value any) (any, error) {
	if !isContainer(root) {
		return nil, rootTypeError(path, root)
	}
	segments, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return setSegments(root, path, segments, value)
}

// Delete removes the value at path. Missing intermediates are a no-op
// success, as is an out-of-range index. Deleting an array element shifts the
// remaining elements left. The mutated root is returned. Delete fails only
// when root is not a map or slice, or the path is malformed.
func Delete(root any, path string) (any, error) {
	if !isContainer(root) {
		return nil, rootTypeError(path, root)
	}
	segments, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return deleteSegments(root, path, segments), nil
}

func setSegments(container any, path string, segments []Segment, value any) (any, error) {
	seg := segments[0]

	switch c := container.(type) {
	case map[string]any:
		key := segmentKey(seg)
		if len(segments) == 1 {
			c[key] = value
			return c, nil
		}
		child, err := setSegments(ensureContainer(c[key], segments[1]), path, segments[1:], value)
		if err != nil {
			return nil, err
		}
		c[key] = child
		return c, nil

	case []any:
		idx, ok := seg.(IndexSegment)
		if !ok {
			return nil, &schemaerrors.PathError{
				Path:    path,
				Message: fmt.Sprintf("cannot address key %q in array", segmentKey(seg)),
			}
		}
		for len(c) <= idx.Index {
			c = append(c, nil)
		}
		if len(segments) == 1 {
			c[idx.Index] = value
			return c, nil
		}
		child, err := setSegments(ensureContainer(c[idx.Index], segments[1]), path, segments[1:], value)
		if err != nil {
			return nil, err
		}
		c[idx.Index] = child
		return c, nil

	default:
		// Unreachable: ensureContainer guarantees a container.
		return nil, rootTypeError(path, container)
	}
}

func deleteSegments(container any, path string, segments []Segment) any {
	seg := segments[0]

	switch c := container.(type) {
	case map[string]any:
		key := segmentKey(seg)
		if len(segments) == 1 {
			delete(c, key)
			return c
		}
		child, ok := c[key]
		if !ok || !isContainer(child) {
			return c
		}
		c[key] = deleteSegments(child, path, segments[1:])
		return c

	case []any:
		idx, ok := seg.(IndexSegment)
		if !ok || idx.Index < 0 || idx.Index >= len(c) {
			return c
		}
		if len(segments) == 1 {
			return append(c[:idx.Index], c[idx.Index+1:]...)
		}
		child := c[idx.Index]
		if !isContainer(child) {
			return c
		}
		c[idx.Index] = deleteSegments(child, path, segments[1:])
		return c

	default:
		return container
	}
}

// segmentKey renders a segment as a map key. Index segments address the
// decimal string key when applied to a map.
func segmentKey(seg Segment) string {
	switch s := seg.(type) {
	case KeySegment:
		return s.Key
	case IndexSegment:
		return strconv.Itoa(s.Index)
	default:
		return ""
	}
}

// ensureContainer returns child when it already is a container, otherwise a
// fresh container chosen by the segment that will address into it.
func ensureContainer(child any, next Segment) any {
	switch child.(type) {
	case map[string]any, []any:
		return child
	}
	if _, ok := next.(IndexSegment); ok {
		return []any{}
	}
	return map[string]any{}
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

func rootTypeError(path string, root any) error {
	return &schemaerrors.PathError{
		Path:    path,
		Message: fmt.Sprintf("root must be a map or slice, got %T", root),
	}
}
