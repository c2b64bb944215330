package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePurchaseType(t *testing.T) {
	assert.Equal(t, PurchaseTypeFull, NormalizePurchaseType("full"))
	assert.Equal(t, PurchaseTypePartial, NormalizePurchaseType("partial"))
	assert.Equal(t, PurchaseTypePartial, NormalizePurchaseType("FULL"))
	assert.Equal(t, PurchaseTypePartial, NormalizePurchaseType(""))
	assert.Equal(t, PurchaseTypePartial, NormalizePurchaseType("wholesale"))
}

func TestFormSession_OptionByID(t *testing.T) {
	session := &FormSession{
		Options: []SubSkuOption{
			{ID: "a", Label: "First"},
			{ID: "b", Label: "Second"},
		},
	}

	opt := session.OptionByID("b")
	require.NotNil(t, opt)
	assert.Equal(t, "Second", opt.Label)

	assert.Nil(t, session.OptionByID("missing"))
}
