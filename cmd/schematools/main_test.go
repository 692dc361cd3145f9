package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"compse", "compose"},
		{"comopse", "compose"},
		{"fetc", "fetch"},
		{"ftech", "fetch"},
		{"pth", "path"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"composition", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"compose", "compse", 1},
	}

	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRenderDocument(t *testing.T) {
	doc := map[string]any{"type": "object"}

	jsonOut, err := renderDocument(doc, false)
	if err != nil {
		t.Fatalf("renderDocument(json): %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(jsonOut, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	yamlOut, err := renderDocument(doc, true)
	if err != nil {
		t.Fatalf("renderDocument(yaml): %v", err)
	}
	if string(yamlOut) != "type: object\n" {
		t.Errorf("renderDocument(yaml) = %q", yamlOut)
	}
}

func TestHandleCompose(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "root.schema.json")
	if err := os.WriteFile(root, []byte(`{"properties": {"addr": {"$ref": "address.schema.json"}}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "address.schema.json"), []byte(`{"type": "object"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "composed.json")
	err := handleCompose([]string{"--base-dir", dir, "-o", out, "root.schema.json"})
	if err != nil {
		t.Fatalf("handleCompose: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var composed map[string]any
	if err := json.Unmarshal(data, &composed); err != nil {
		t.Fatalf("composed output is not valid JSON: %v", err)
	}
	if composed["$ref"] != "#/$defs/root.schema.json" {
		t.Errorf("composed $ref = %v", composed["$ref"])
	}
}

func TestHandleComposeMissingArg(t *testing.T) {
	if err := handleCompose(nil); err == nil {
		t.Error("expected error for missing argument")
	}
}

func TestHandlePath(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(doc, []byte(`{"properties": {"name": {"description": "Full name"}}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := handlePath([]string{doc, "properties.name.description"}); err != nil {
		t.Fatalf("handlePath: %v", err)
	}

	if err := handlePath([]string{doc, "properties.age"}); err == nil {
		t.Error("expected error for absent path without default")
	}

	if err := handlePath([]string{"--default", `"unknown"`, doc, "properties.age"}); err != nil {
		t.Errorf("handlePath with default: %v", err)
	}
}
