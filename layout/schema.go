package layout

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/wippyai/layout-codec/errors"
)

type schemaNode struct {
	Name   string    `json:"name,omitempty"`
	Kind   Kind      `json:"kind"`
	Fields []*Layout `json:"fields,omitempty"`
}

// MarshalJSON encodes the layout in schema form.
func (l *Layout) MarshalJSON() ([]byte, error) {
	return json.Marshal(schemaNode{Name: l.Name, Kind: l.Kind, Fields: l.Children})
}

// UnmarshalJSON decodes the schema form. It does not validate; Parse does.
func (l *Layout) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var n schemaNode
	if err := dec.Decode(&n); err != nil {
		return err
	}
	*l = Layout{Name: n.Name, Kind: n.Kind, Children: n.Fields}
	return nil
}

// Parse decodes and validates a JSON schema document.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Load("parse layout schema", err)
	}
	if err := Validate(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses a JSON schema file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read layout schema "+path, err)
	}
	return Parse(data)
}

// Marshal encodes a layout as an indented JSON schema document.
func Marshal(l *Layout) ([]byte, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	return json.MarshalIndent(l, "", "  ")
}
