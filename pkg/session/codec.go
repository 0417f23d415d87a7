package session

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec turns session payloads into stored bytes and back. Encodings are
// expected to be human-readable so an operator can inspect and hand-edit a
// stored session; both bundled codecs satisfy that.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error

	// Ext is the file extension used by file-backed storage, without the dot.
	Ext() string
}

// JSONCodec encodes payloads as indented JSON. This is the default codec.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Ext() string { return "json" }

// YAMLCodec encodes payloads as YAML documents.
type YAMLCodec struct{}

func (YAMLCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (YAMLCodec) Ext() string { return "yaml" }
