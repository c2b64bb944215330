package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubSkuLabel_FullLabel(t *testing.T) {
	parsed := ParseSubSkuLabel(`iPhone 13_X_[Graphite]_["E-Sim"]_Y_Dubai`)

	assert.Equal(t, "iPhone 13", parsed.Name)
	require.NotNil(t, parsed.Color)
	assert.Equal(t, "Graphite", *parsed.Color)
	require.NotNil(t, parsed.SimType)
	assert.Equal(t, "E-Sim", *parsed.SimType)
	require.NotNil(t, parsed.Country)
	assert.Equal(t, "Dubai", *parsed.Country)
}

func TestParseSubSkuLabel_ShortLabelIsNameOnly(t *testing.T) {
	parsed := ParseSubSkuLabel("Galaxy S22 Ultra")

	assert.Equal(t, "Galaxy S22 Ultra", parsed.Name)
	assert.Nil(t, parsed.Color)
	assert.Nil(t, parsed.SimType)
	assert.Nil(t, parsed.Country)
}

func TestParseSubSkuLabel_FiveSegmentsIsStillNameOnly(t *testing.T) {
	parsed := ParseSubSkuLabel(`iPhone 13_X_[Graphite]_["E-Sim"]_Y`)

	assert.Equal(t, "iPhone 13", parsed.Name)
	assert.Nil(t, parsed.Color)
	assert.Nil(t, parsed.SimType)
	assert.Nil(t, parsed.Country)
}

func TestParseSubSkuLabel_EmptyAttributesAreNonNil(t *testing.T) {
	// Encoded but empty is different from not encoded at all.
	parsed := ParseSubSkuLabel(`iPhone 13_X_[]_[]_Y_`)

	require.NotNil(t, parsed.Color)
	assert.Equal(t, "", *parsed.Color)
	require.NotNil(t, parsed.SimType)
	assert.Equal(t, "", *parsed.SimType)
	require.NotNil(t, parsed.Country)
	assert.Equal(t, "", *parsed.Country)
}

func TestParseSubSkuLabel_MalformedSimTypeFallsBack(t *testing.T) {
	parsed := ParseSubSkuLabel(`iPhone 13_X_[Blue]_["Physical]_Y_UAE`)

	require.NotNil(t, parsed.SimType)
	assert.Equal(t, "Physical", *parsed.SimType)
}

func TestParseSubSkuLabel_SimTypeUsesFirstElement(t *testing.T) {
	parsed := ParseSubSkuLabel(`iPhone 13_X_[Blue]_["Dual","E-Sim"]_Y_UAE`)

	require.NotNil(t, parsed.SimType)
	assert.Equal(t, "Dual", *parsed.SimType)
}

func TestStripBrackets(t *testing.T) {
	assert.Equal(t, "Graphite", stripBrackets("[Graphite]"))
	assert.Equal(t, "Sierra Blue", stripBrackets(" [ Sierra Blue ] "))
	assert.Equal(t, "Plain", stripBrackets("Plain"))
	assert.Equal(t, "", stripBrackets("[]"))
}

func TestAttributePresent(t *testing.T) {
	empty := ""
	value := "Graphite"

	assert.False(t, attributePresent(nil))
	assert.False(t, attributePresent(&empty))
	assert.True(t, attributePresent(&value))
}
