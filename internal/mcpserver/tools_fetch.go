package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nagaozen/schematools/loader"
)

type fetchInput struct {
	URI      string            `json:"uri"                jsonschema:"URI of the schema document, absolute or relative to basepath"`
	Basepath string            `json:"basepath,omitempty" jsonschema:"Base address the uri is resolved against"`
	Lang     string            `json:"lang,omitempty"     jsonschema:"BCP 47 language tag for the localization overlay; defaults to SCHEMATOOLS_LANG"`
	Header   map[string]string `json:"header,omitempty"   jsonschema:"Headers passed through to http/https fetches"`
	Pretty   bool              `json:"pretty,omitempty"   jsonschema:"Indent the returned document"`
}

type fetchOutput struct {
	Schema string `json:"schema"`
}

func handleFetch(ctx context.Context, _ *mcp.CallToolRequest, input fetchInput) (*mcp.CallToolResult, fetchOutput, error) {
	doc, err := loader.LoadSchema(ctx, input.URI, input.Basepath, loadOptions(input.Lang, input.Header)...)
	if err != nil {
		return errResult(err), fetchOutput{}, nil
	}

	var data []byte
	if input.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return errResult(err), fetchOutput{}, nil
	}

	return nil, fetchOutput{Schema: string(data)}, nil
}
