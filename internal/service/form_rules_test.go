package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telmart/console_api/internal/models"
)

func TestValidateForm_PartialMOQAboveStock(t *testing.T) {
	f := &models.ProductFormState{
		PurchaseType: models.PurchaseTypePartial,
		Stock:        "10",
		MOQ:          "11",
	}

	verdict := ValidateForm(f)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "MOQ must be less than or equal to Stock", verdict.Reason)
}

func TestValidateForm_PartialMOQEqualToStock(t *testing.T) {
	f := &models.ProductFormState{
		PurchaseType: models.PurchaseTypePartial,
		Stock:        "10",
		MOQ:          "10",
	}

	assert.True(t, ValidateForm(f).Valid)
}

func TestValidateForm_FullPurchaseSkipsMOQRule(t *testing.T) {
	f := &models.ProductFormState{
		PurchaseType: models.PurchaseTypeFull,
		Stock:        "5",
		MOQ:          "50",
	}

	assert.True(t, ValidateForm(f).Valid)
}

func TestValidateForm_FlashDealRequiresExpiry(t *testing.T) {
	f := &models.ProductFormState{
		PurchaseType: models.PurchaseTypeFull,
		IsFlashDeal:  true,
	}

	verdict := ValidateForm(f)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "Expiry time is required for Flash Deal", verdict.Reason)
}

func TestValidateForm_FlashDealRejectsUnparseableExpiry(t *testing.T) {
	f := &models.ProductFormState{
		PurchaseType: models.PurchaseTypeFull,
		IsFlashDeal:  true,
		ExpiryTime:   "tomorrow-ish",
	}

	verdict := ValidateForm(f)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "Please select a valid date and time", verdict.Reason)
}

func TestValidateForm_FlashDealAcceptsPickerFormats(t *testing.T) {
	valid := []string{
		"2026-09-01T18:30:00Z",
		"2026-09-01T18:30:00",
		"2026-09-01T18:30",
		"2026-09-01 18:30:00",
		"2026-09-01 18:30",
		"2026-09-01",
	}
	for _, v := range valid {
		f := &models.ProductFormState{
			PurchaseType: models.PurchaseTypeFull,
			IsFlashDeal:  true,
			ExpiryTime:   v,
		}
		assert.True(t, ValidateForm(f).Valid, "expected %q to be accepted", v)
	}
}

func TestValidateForm_MOQRuleWinsOverExpiry(t *testing.T) {
	f := &models.ProductFormState{
		PurchaseType: models.PurchaseTypePartial,
		Stock:        "1",
		MOQ:          "2",
		IsFlashDeal:  true,
	}

	verdict := ValidateForm(f)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "MOQ must be less than or equal to Stock", verdict.Reason)
}

func TestValidateVariantRow(t *testing.T) {
	row := &models.VariantRow{Stock: "3", MOQ: "4"}

	assert.False(t, ValidateVariantRow(row, models.PurchaseTypePartial).Valid)
	assert.True(t, ValidateVariantRow(row, models.PurchaseTypeFull).Valid)
}

func TestFilterInteger(t *testing.T) {
	assert.Equal(t, "123", filterInteger("1a2b3c"))
	assert.Equal(t, "42", filterInteger(" 4 2 "))
	assert.Equal(t, "", filterInteger("abc"))
	assert.Equal(t, "10", filterInteger("1.0"))
}

func TestFilterDecimal(t *testing.T) {
	assert.Equal(t, "12.50", filterDecimal("12.50"))
	assert.Equal(t, "12.50", filterDecimal("12.5.0"))
	assert.Equal(t, "1299", filterDecimal("1,299"))
	assert.Equal(t, "", filterDecimal("AED"))
}

func TestParseIntField_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, parseIntField(""))
	assert.Equal(t, 7, parseIntField(" 7 "))
}

func TestFormatFields_ZeroRendersEmpty(t *testing.T) {
	assert.Equal(t, "", formatIntField(0))
	assert.Equal(t, "15", formatIntField(15))
	assert.Equal(t, "", formatFloatField(0))
	assert.Equal(t, "2499.99", formatFloatField(2499.99))
}
