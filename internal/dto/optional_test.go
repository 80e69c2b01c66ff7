package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_Unmarshal(t *testing.T) {
	var in struct {
		Phone OptionalString `json:"telefono"`
		Style OptionalString `json:"estilo"`
		Notes OptionalString `json:"descripcion"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"telefono":null,"estilo":"realismo"}`), &in))

	assert.True(t, in.Phone.Set)
	assert.Nil(t, in.Phone.Value)

	assert.True(t, in.Style.Set)
	require.NotNil(t, in.Style.Value)
	assert.Equal(t, "realismo", *in.Style.Value)

	assert.False(t, in.Notes.Set)
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	var in struct {
		Phone OptionalString `json:"telefono"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"telefono":42}`), &in))
}

func TestOptionalString_Apply(t *testing.T) {
	old := "111"

	assert.Same(t, &old, OptionalString{}.Apply(&old))
	assert.Nil(t, NullString().Apply(&old))
	assert.Equal(t, "222", *SetString("222").Apply(&old))
}
