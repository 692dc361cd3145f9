package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagaozen/schematools/schemaerrors"
)

func TestHTTPProviderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/root.schema.json":
			_, _ = w.Write([]byte(`{"type": "object", "title": "Root"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.Client())
	doc, err := p.Fetch(context.Background(), srv.URL+"/root.schema.json", FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "object", "title": "Root"}, doc)
}

func TestHTTPProviderSendsHeaders(t *testing.T) {
	var gotUA, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.Client())
	_, err := p.Fetch(context.Background(), srv.URL+"/x.json", FetchOptions{
		UserAgent: "schematools-test/1.0",
		Header:    map[string]string{"Authorization": "Bearer token"},
	})
	require.NoError(t, err)
	assert.Equal(t, "schematools-test/1.0", gotUA)
	assert.Equal(t, "Bearer token", gotAuth)
}

func TestHTTPProviderNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.Client())
	_, err := p.Fetch(context.Background(), srv.URL+"/x.json", FetchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPProviderBodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"title": "this body exceeds the limit"}`))
	}))
	defer srv.Close()

	p := &HTTPProvider{Client: srv.Client(), MaxBodySize: 8}
	_, err := p.Fetch(context.Background(), srv.URL+"/x.json", FetchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, schemaerrors.ErrResourceLimit)
}

func TestHTTPProviderYAMLResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("type: object\ntitle: FromYAML\n"))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.Client())
	doc, err := p.Fetch(context.Background(), srv.URL+"/x.yaml", FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "object", "title": "FromYAML"}, doc)
}

func TestHTTPProviderWithLoader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/schemas/root.schema.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"properties": {"addr": {"$ref": "address.schema.json"}}}`))
	})
	mux.HandleFunc("/schemas/address.schema.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type": "object"}`))
	})
	mux.HandleFunc("/", http.NotFound)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewHTTPProvider(srv.Client())
	result, err := Load(context.Background(), "root.schema.json", srv.URL+"/schemas/",
		WithProvider("http", p))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Defs.Len())
	assert.Equal(t, "#/$defs/"+referenceKey(srv.URL+"/schemas/root.schema.json"), result.Ref)
}
