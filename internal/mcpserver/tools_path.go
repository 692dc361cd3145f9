package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nagaozen/schematools/docpath"
)

type pathGetInput struct {
	Document string `json:"document" jsonschema:"JSON document to read from"`
	Path     string `json:"path"     jsonschema:"Dotted path into the document, e.g. properties.name.description or items[0].type"`
}

type pathGetOutput struct {
	Found bool   `json:"found"`
	Value string `json:"value,omitempty"`
}

func handlePathGet(_ context.Context, _ *mcp.CallToolRequest, input pathGetInput) (*mcp.CallToolResult, pathGetOutput, error) {
	var doc any
	if err := json.Unmarshal([]byte(input.Document), &doc); err != nil {
		return errResult(fmt.Errorf("invalid document: %w", err)), pathGetOutput{}, nil
	}

	value, ok := docpath.Get(doc, input.Path)
	if !ok {
		return nil, pathGetOutput{Found: false}, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errResult(err), pathGetOutput{}, nil
	}
	return nil, pathGetOutput{Found: true, Value: string(data)}, nil
}
