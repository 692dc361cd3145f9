package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nagaozen/schematools/loader"
)

type composeInput struct {
	URI      string            `json:"uri"                jsonschema:"URI of the root schema document, absolute or relative to basepath"`
	Basepath string            `json:"basepath,omitempty" jsonschema:"Base address relative references are resolved against"`
	Lang     string            `json:"lang,omitempty"     jsonschema:"BCP 47 language tag for localization overlays; defaults to SCHEMATOOLS_LANG"`
	Header   map[string]string `json:"header,omitempty"   jsonschema:"Headers passed through to http/https fetches"`
	Pretty   bool              `json:"pretty,omitempty"   jsonschema:"Indent the composed document"`
}

type composeOutput struct {
	Ref           string   `json:"ref"`
	DocumentCount int      `json:"document_count"`
	Keys          []string `json:"keys"`
	Composition   string   `json:"composition"`
}

func handleCompose(ctx context.Context, _ *mcp.CallToolRequest, input composeInput) (*mcp.CallToolResult, composeOutput, error) {
	result, err := loader.Load(ctx, input.URI, input.Basepath, loadOptions(input.Lang, input.Header)...)
	if err != nil {
		return errResult(err), composeOutput{}, nil
	}

	var data []byte
	if input.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return errResult(err), composeOutput{}, nil
	}

	return nil, composeOutput{
		Ref:           result.Ref,
		DocumentCount: result.Defs.Len(),
		Keys:          result.Defs.Keys(),
		Composition:   string(data),
	}, nil
}
