// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schematools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"net/http"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nagaozen/schematools"
	"github.com/nagaozen/schematools/loader"
)

const serverInstructions = `schematools MCP server — composes JSON Schema documents by resolving external $ref targets into a single self-contained document, with per-language localization overlays.

Configuration: All defaults are configurable via SCHEMATOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SCHEMATOOLS_LANG (default: en-US) — localization language for overlay sidecars
- SCHEMATOOLS_BASE_DIR (default: .) — root directory for file references; references cannot escape it
- SCHEMATOOLS_HTTP_ENABLED (default: true) — allow http/https references
- SCHEMATOOLS_HTTP_TIMEOUT (default: 30s) — timeout for http/https fetches
- SCHEMATOOLS_MAX_DOCUMENTS (default: 100) — maximum documents fetched per compose call
- SCHEMATOOLS_MAX_DEPTH — maximum traversal depth per document

Each tool call starts cold: nothing is cached across invocations.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schematools", Version: schematools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compose",
		Description: "Compose a JSON Schema document and every schema it references, transitively, into a single self-contained document of the shape {\"$defs\": {...}, \"$ref\": \"#/$defs/<root>\"}. External $ref targets are fetched, localized, and rewritten to local references; embedded $defs are hoisted. The default language is configurable via SCHEMATOOLS_LANG.",
	}, handleCompose)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch",
		Description: "Fetch and localize a single schema document without resolving its references. The localization sidecar for the configured language is merged into the document; a missing sidecar is not an error.",
	}, handleFetch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "path_get",
		Description: "Read a value out of a JSON document by dotted path, e.g. properties.name.description or items[0].type. Bracket segments index arrays; quoted bracket segments ([\"a.b\"]) address keys that contain dots. Reports whether the path exists, distinguishing a missing path from an explicit null.",
	}, handlePathGet)
}

// loadOptions translates server configuration and per-call inputs into
// loader options, registering the default providers.
func loadOptions(lang string, header map[string]string) []loader.Option {
	opts := []loader.Option{
		loader.WithProvider("file", loader.NewFileProvider(cfg.BaseDir)),
		loader.WithMaxDocuments(cfg.MaxDocuments),
		loader.WithMaxDepth(cfg.MaxDepth),
	}
	if cfg.HTTPEnabled {
		hp := loader.NewHTTPProvider(&http.Client{Timeout: cfg.HTTPTimeout})
		opts = append(opts,
			loader.WithProvider("http", hp),
			loader.WithProvider("https", hp),
		)
	}
	if lang == "" {
		lang = cfg.Lang
	}
	opts = append(opts, loader.WithLang(lang))
	for k, v := range header {
		opts = append(opts, loader.WithHeader(k, v))
	}
	return opts
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
