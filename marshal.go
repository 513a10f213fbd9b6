package maybe

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Both codecs map Nothing to null and Just to the bare encoding of the
// contained value, so optional struct fields read naturally. The mapping
// is lossy in one corner: a Just whose contained value encodes as null
// (e.g. a nil pointer) decodes as Nothing.

// MarshalJSON implements json.Marshaler.
func (m Maybe[T]) MarshalJSON() ([]byte, error) {
	if !m.present {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Maybe[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Nothing[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Just(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Maybe[T]) MarshalYAML() (any, error) {
	if !m.present {
		return nil, nil
	}
	return m.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Maybe[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*m = Nothing[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*m = Just(v)
	return nil
}
