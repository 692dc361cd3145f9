package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceKey(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			name:    "https address",
			address: "https://example.com/schemas/address.schema.json",
			want:    "https:::example.com:schemas:address.schema.json",
		},
		{
			name:    "file address",
			address: "file:///tmp/root.schema.json",
			want:    "file::::tmp:root.schema.json",
		},
		{
			name:    "backslashes normalize too",
			address: `C:\schemas\root.schema.json`,
			want:    "C::schemas:root.schema.json",
		},
		{
			name:    "no separators",
			address: "root.schema.json",
			want:    "root.schema.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, referenceKey(tt.address))
		})
	}
}

func TestAnchorKey(t *testing.T) {
	assert.Equal(t, "doc:$defs:positiveInteger", anchorKey("doc", "positiveInteger"))
	// Compound anchor paths normalize their separators as well.
	assert.Equal(t, "doc:$defs:a:b", anchorKey("doc", "a/b"))
}

func TestResolveAddress(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		basepath   string
		wantAddr   string
		wantScheme string
	}{
		{
			name:       "relative against http base",
			uri:        "address.schema.json",
			basepath:   "http://example.com/schemas/",
			wantAddr:   "http://example.com/schemas/address.schema.json",
			wantScheme: "http",
		},
		{
			name:       "relative against ftp base",
			uri:        "root.schema.json",
			basepath:   "ftp://example.com/",
			wantAddr:   "ftp://example.com/root.schema.json",
			wantScheme: "ftp",
		},
		{
			name:       "absolute uri ignores base",
			uri:        "https://other.com/x.schema.json",
			basepath:   "http://example.com/",
			wantAddr:   "https://other.com/x.schema.json",
			wantScheme: "https",
		},
		{
			name:       "schemeless resolves to file",
			uri:        "x.schema.json",
			basepath:   "/schemas/",
			wantAddr:   "/schemas/x.schema.json",
			wantScheme: "file",
		},
		{
			name:       "empty base keeps uri",
			uri:        "x.schema.json",
			basepath:   "",
			wantAddr:   "x.schema.json",
			wantScheme: "file",
		},
		{
			name:       "scheme is lowercased",
			uri:        "HTTPS://example.com/x.schema.json",
			basepath:   "",
			wantAddr:   "HTTPS://example.com/x.schema.json",
			wantScheme: "https",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, scheme, err := resolveAddress(tt.uri, tt.basepath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, addr)
			assert.Equal(t, tt.wantScheme, scheme)
		})
	}
}

func TestLocalizationAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		lang    string
		want    string
	}{
		{
			name:    "conventional schema suffix",
			address: "https://example.com/person.schema.json",
			lang:    "fr-FR",
			want:    "https://example.com/person.fr-FR.json",
		},
		{
			name:    "plain json suffix",
			address: "https://example.com/person.json",
			lang:    "en-US",
			want:    "https://example.com/person.en-US.json",
		},
		{
			name:    "no extension appends lang",
			address: "https://example.com/person",
			lang:    "en-US",
			want:    "https://example.com/person.en-US",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localizationAddress(tt.address, tt.lang))
		})
	}
}

func TestAnchorName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{ref: "#/$defs/positiveInteger", want: "positiveInteger"},
		{ref: "#/positiveInteger", want: "positiveInteger"},
		{ref: "#positiveInteger", want: "positiveInteger"},
		{ref: "#", want: ""},
		{ref: "#/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, anchorName(tt.ref))
		})
	}
}
