package maybe_test

import (
	"encoding/json"
	"testing"

	"github.com/aertje/maybe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type person struct {
	Name     string              `json:"name" yaml:"name"`
	Nickname maybe.Maybe[string] `json:"nickname" yaml:"nickname"`
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(maybe.Just(5))
	require.NoError(t, err)
	assert.Equal(t, "5", string(data))

	data, err = json.Marshal(maybe.Nothing[int]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	var m maybe.Maybe[int]
	require.NoError(t, json.Unmarshal([]byte("7"), &m))
	assert.Equal(t, maybe.Just(7), m)

	require.NoError(t, json.Unmarshal([]byte("null"), &m))
	assert.Equal(t, maybe.Nothing[int](), m)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &m))
}

func TestJSONRoundTrip(t *testing.T) {
	for _, p := range []person{
		{Name: "bob", Nickname: maybe.Just("bobby")},
		{Name: "henry"},
	} {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var got person
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, p, got)
	}
}

func TestMarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(maybe.Just("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))

	data, err = yaml.Marshal(maybe.Nothing[string]())
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(data))
}

func TestYAMLRoundTrip(t *testing.T) {
	for _, p := range []person{
		{Name: "bob", Nickname: maybe.Just("bobby")},
		{Name: "henry"},
	} {
		data, err := yaml.Marshal(p)
		require.NoError(t, err)

		var got person
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, p, got)
	}
}

func TestUnmarshalYAMLNull(t *testing.T) {
	var p person
	require.NoError(t, yaml.Unmarshal([]byte("name: ann\nnickname: null\n"), &p))
	assert.Equal(t, maybe.Nothing[string](), p.Nickname)

	require.NoError(t, yaml.Unmarshal([]byte("name: ann\nnickname: an\n"), &p))
	assert.Equal(t, maybe.Just("an"), p.Nickname)
}
