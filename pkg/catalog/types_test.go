package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubSkuFamily_UnmarshalPrimaryShape(t *testing.T) {
	var s SubSkuFamily
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "sub1", "value": "iPhone 13_X_[Blue]_[\"E-Sim\"]_Y_Dubai"}`), &s))

	assert.Equal(t, "sub1", s.ID)
	assert.Equal(t, `iPhone 13_X_[Blue]_["E-Sim"]_Y_Dubai`, s.Label)
}

func TestSubSkuFamily_UnmarshalAliasShape(t *testing.T) {
	var s SubSkuFamily
	require.NoError(t, json.Unmarshal([]byte(`{"id": "sub2", "name": "Galaxy S22"}`), &s))

	assert.Equal(t, "sub2", s.ID)
	assert.Equal(t, "Galaxy S22", s.Label)
}

func TestFlexString_PlainString(t *testing.T) {
	var f FlexString
	require.NoError(t, json.Unmarshal([]byte(`"E-Sim"`), &f))
	assert.Equal(t, FlexString("E-Sim"), f)
}

func TestFlexString_ArrayCollapsesToFirstElement(t *testing.T) {
	var f FlexString
	require.NoError(t, json.Unmarshal([]byte(`["Dual", "E-Sim"]`), &f))
	assert.Equal(t, FlexString("Dual"), f)
}

func TestFlexString_EmptyArray(t *testing.T) {
	f := FlexString("stale")
	require.NoError(t, json.Unmarshal([]byte(`[]`), &f))
	assert.Equal(t, FlexString(""), f)
}

func TestProduct_DecodesLegacyArrays(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "p1",
		"simType": ["Physical"],
		"ram": "8GB",
		"storage": ["256GB", "512GB"]
	}`), &p))

	assert.Equal(t, FlexString("Physical"), p.SimType)
	assert.Equal(t, FlexString("8GB"), p.RAM)
	assert.Equal(t, FlexString("256GB"), p.Storage)
}
