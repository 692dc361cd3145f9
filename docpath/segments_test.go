package docpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagaozen/schematools/schemaerrors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Segment
	}{
		{
			name: "single key",
			path: "a",
			want: []Segment{KeySegment{Key: "a"}},
		},
		{
			name: "dotted keys",
			path: "properties.name.description",
			want: []Segment{
				KeySegment{Key: "properties"},
				KeySegment{Key: "name"},
				KeySegment{Key: "description"},
			},
		},
		{
			name: "key with index",
			path: "a[0].b",
			want: []Segment{
				KeySegment{Key: "a"},
				IndexSegment{Index: 0},
				KeySegment{Key: "b"},
			},
		},
		{
			name: "multi digit index",
			path: "items[42]",
			want: []Segment{KeySegment{Key: "items"}, IndexSegment{Index: 42}},
		},
		{
			name: "numeric dot key is not an index",
			path: "a.0.b",
			want: []Segment{
				KeySegment{Key: "a"},
				KeySegment{Key: "0"},
				KeySegment{Key: "b"},
			},
		},
		{
			name: "single quoted key with separators",
			path: "a['x.y[0]']",
			want: []Segment{KeySegment{Key: "a"}, KeySegment{Key: "x.y[0]"}},
		},
		{
			name: "double quoted key",
			path: `a["b.c"]`,
			want: []Segment{KeySegment{Key: "a"}, KeySegment{Key: "b.c"}},
		},
		{
			name: "quoted digits stay a key",
			path: "a['0']",
			want: []Segment{KeySegment{Key: "a"}, KeySegment{Key: "0"}},
		},
		{
			name: "empty path yields empty key",
			path: "",
			want: []Segment{KeySegment{Key: ""}},
		},
		{
			name: "leading bracket",
			path: "[1].a",
			want: []Segment{IndexSegment{Index: 1}, KeySegment{Key: "a"}},
		},
		{
			name: "consecutive dots address empty keys",
			path: "a..b",
			want: []Segment{
				KeySegment{Key: "a"},
				KeySegment{Key: ""},
				KeySegment{Key: "b"},
			},
		},
		{
			name: "bracket directly after bracket",
			path: "a[0][1]",
			want: []Segment{
				KeySegment{Key: "a"},
				IndexSegment{Index: 0},
				IndexSegment{Index: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unterminated quote", path: "a['b"},
		{name: "missing bracket close after index", path: "a[0"},
		{name: "missing bracket close after quoted key", path: "a['b'"},
		{name: "negative index", path: "a[-1]"},
		{name: "non-digit bracket content", path: "a[b]"},
		{name: "stray closing bracket", path: "a]b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, schemaerrors.ErrPath)
		})
	}
}
