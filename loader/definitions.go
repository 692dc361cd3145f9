package loader

import (
	"bytes"
	"encoding/json"

	"go.yaml.in/yaml/v4"
)

// Definitions is the global definition table of a composition: reference
// key to resolved document, in first-discovery order. Exactly one entry
// exists per distinct resolved document, no matter how often it is
// referenced.
type Definitions struct {
	keys   []string
	values map[string]any
}

// NewDefinitions creates an empty definition table.
func NewDefinitions() *Definitions {
	return &Definitions{values: make(map[string]any)}
}

// Set stores doc under key. The first insertion fixes the key's position;
// storing an existing key overwrites the value in place.
func (d *Definitions) Set(key string, doc any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = doc
}

// Get returns the document stored under key.
func (d *Definitions) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Definitions) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in first-discovery order.
func (d *Definitions) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries.
func (d *Definitions) Len() int {
	return len(d.keys)
}

// MarshalJSON renders the table as a JSON object with keys in
// first-discovery order.
func (d *Definitions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(d.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the table as a YAML mapping with keys in
// first-discovery order.
func (d *Definitions) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range d.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(d.values[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// Composition is the result of a Load call: the global definition table and
// a reference to the root document's entry. The root is never inlined, so a
// schema referencing itself composes without infinite nesting.
type Composition struct {
	Defs *Definitions `json:"$defs" yaml:"$defs"`
	Ref  string       `json:"$ref" yaml:"$ref"`
}
