package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telmart/console_api/internal/models"
	"github.com/telmart/console_api/internal/utils"
)

func change(field, value string) FieldChange {
	return FieldChange{Field: field, Value: json.RawMessage(value)}
}

func newTestSession() *models.FormSession {
	return &models.FormSession{
		ID:       "form-1",
		SellerID: "seller-1",
		Status:   models.FormStatusEditing,
		Form: models.ProductFormState{
			PurchaseType: models.PurchaseTypePartial,
		},
	}
}

func TestApplyFieldChange_LockedAttributeRejected(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()
	session.Locks.Color = true

	err := svc.applyFieldChange(session, change("color", `"Red"`))
	assert.ErrorIs(t, err, utils.ErrFieldLocked)
	assert.Equal(t, "", session.Form.Color)
}

func TestApplyFieldChange_UnlockedAttributeAccepted(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()

	require.NoError(t, svc.applyFieldChange(session, change("color", `"Red"`)))
	assert.Equal(t, "Red", session.Form.Color)
}

func TestApplyFieldChange_PriceIsFiltered(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()

	require.NoError(t, svc.applyFieldChange(session, change("price", `"2,499.99"`)))
	assert.Equal(t, "2499.99", session.Form.Price)
}

func TestApplyFieldChange_StockSyncsMOQOnFullPurchase(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()
	session.Form.PurchaseType = models.PurchaseTypeFull

	require.NoError(t, svc.applyFieldChange(session, change("stock", `"25"`)))
	assert.Equal(t, "25", session.Form.Stock)
	assert.Equal(t, "25", session.Form.MOQ)
}

func TestApplyFieldChange_PartialPurchaseKeepsMOQIndependent(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()
	session.Form.MOQ = "5"

	require.NoError(t, svc.applyFieldChange(session, change("stock", `"25"`)))
	assert.Equal(t, "5", session.Form.MOQ)
}

func TestApplyFieldChange_SwitchToFullAdoptsStockAsMOQ(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()
	session.Form.Stock = "40"
	session.Form.MOQ = "5"

	require.NoError(t, svc.applyFieldChange(session, change("purchaseType", `"full"`)))
	assert.Equal(t, models.PurchaseTypeFull, session.Form.PurchaseType)
	assert.Equal(t, "40", session.Form.MOQ)
}

func TestApplyFieldChange_UnknownPurchaseTypeNormalizesToPartial(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()

	require.NoError(t, svc.applyFieldChange(session, change("purchaseType", `"wholesale"`)))
	assert.Equal(t, models.PurchaseTypePartial, session.Form.PurchaseType)
}

func TestApplyFieldChange_UnknownField(t *testing.T) {
	svc := &FormService{}
	session := newTestSession()

	err := svc.applyFieldChange(session, change("warranty", `"2 years"`))
	assert.ErrorIs(t, err, utils.ErrUnknownField)
}

func TestApplyParsedAttribute_PresentValueAdoptsAndLocks(t *testing.T) {
	value := "E-Sim"
	var field string
	var lock bool

	applyParsedAttribute(&value, &field, &lock)
	assert.Equal(t, "E-Sim", field)
	assert.True(t, lock)
}

func TestApplyParsedAttribute_AbsentValueUnlocksAndKeeps(t *testing.T) {
	field := "Physical"
	lock := true

	applyParsedAttribute(nil, &field, &lock)
	assert.Equal(t, "Physical", field)
	assert.False(t, lock)

	empty := ""
	lock = true
	applyParsedAttribute(&empty, &field, &lock)
	assert.Equal(t, "Physical", field)
	assert.False(t, lock)
}

func TestFirstInvalidRowReason(t *testing.T) {
	session := newTestSession()
	session.Variants = []models.VariantRow{
		{Stock: "10", MOQ: "5"},
		{Stock: "3", MOQ: "4"},
	}

	assert.Equal(t, "Row 2: MOQ must be less than or equal to Stock", firstInvalidRowReason(session))

	session.Form.PurchaseType = models.PurchaseTypeFull
	assert.Equal(t, "", firstInvalidRowReason(session))
}

func TestBuildSubmitPayload_SpecificationDefaultsToName(t *testing.T) {
	f := &models.ProductFormState{
		Specification:     "spec-id-123",
		SpecificationName: "iPhone 13 Pro",
		Price:             "3499.50",
		Stock:             "12",
		MOQ:               "3",
		PurchaseType:      models.PurchaseTypePartial,
	}

	payload := BuildSubmitPayload(f)
	assert.Equal(t, "iPhone 13 Pro", payload.Specification)
	assert.Equal(t, 3499.50, payload.Price)
	assert.Equal(t, 12, payload.Stock)
	assert.Equal(t, 3, payload.MOQ)
	assert.Equal(t, "partial", payload.PurchaseType)
}

func TestBuildSubmitPayload_EmptyNameKeepsSpecification(t *testing.T) {
	f := &models.ProductFormState{Specification: "spec-id-123"}

	payload := BuildSubmitPayload(f)
	assert.Equal(t, "spec-id-123", payload.Specification)
}

func TestVariantPayload_RowOverridesBase(t *testing.T) {
	base := &models.ProductFormState{
		SpecificationName: "iPhone 13",
		Condition:         "New",
		Country:           "UAE",
		Price:             "1000",
		Stock:             "10",
		MOQ:               "10",
		PurchaseType:      models.PurchaseTypeFull,
	}
	row := &models.VariantRow{
		Color: "Graphite",
		Price: "1100",
		Stock: "4",
		MOQ:   "4",
	}

	payload := variantPayload(base, row, "group-1")
	assert.Equal(t, "Graphite", payload.Color)
	assert.Equal(t, 1100.0, payload.Price)
	assert.Equal(t, 4, payload.Stock)
	assert.Equal(t, "UAE", payload.Country)
	assert.Equal(t, "New", payload.Condition)
	assert.Equal(t, "group-1", payload.GroupCode)
}
