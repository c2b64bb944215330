package models

import "time"

// PurchaseType enumerates how a listing may be bought.
type PurchaseType string

const (
	// PurchaseTypeFull means the buyer must take the entire stock.
	PurchaseTypeFull PurchaseType = "full"
	// PurchaseTypePartial means the buyer may order between MOQ and stock.
	PurchaseTypePartial PurchaseType = "partial"
)

// NormalizePurchaseType maps any input to a valid purchase type. Anything
// other than "full" normalizes to "partial".
func NormalizePurchaseType(v string) PurchaseType {
	if v == string(PurchaseTypeFull) {
		return PurchaseTypeFull
	}
	return PurchaseTypePartial
}

// ParsedSubSku is the ephemeral result of decoding a sub-SKU family's
// compound label. Nil pointers mean the attribute was not encoded in the
// label at all, which downstream logic treats differently from an
// explicitly empty value.
type ParsedSubSku struct {
	Name    string  `json:"name"`
	Color   *string `json:"color,omitempty"`
	SimType *string `json:"simType,omitempty"`
	Country *string `json:"country,omitempty"`
}

// SubSkuOption is a cached sub-SKU family choice for the active form,
// keyed by the backend's option ID with its raw compound label.
type SubSkuOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProductFormState is the mutable draft of a product being created or
// edited. Numeric inputs are kept as strings because they pass through
// character-level filtering on every edit; coercion to numbers happens
// only when the submit payload is built.
type ProductFormState struct {
	Specification     string       `json:"specification"`
	SpecificationName string       `json:"specificationName"`
	SkuFamilyID       string       `json:"skuFamilyId"`
	SubSkuFamilyID    string       `json:"subSkuFamilyId"`
	SubSkuFamilyName  string       `json:"subSkuFamilyName"`
	SimType           string       `json:"simType"`
	Color             string       `json:"color"`
	RAM               string       `json:"ram"`
	Storage           string       `json:"storage"`
	Condition         string       `json:"condition"`
	Price             string       `json:"price"`
	Stock             string       `json:"stock"`
	Country           string       `json:"country"`
	MOQ               string       `json:"moq"`
	PurchaseType      PurchaseType `json:"purchaseType"`
	IsNegotiable      bool         `json:"isNegotiable"`
	IsFlashDeal       bool         `json:"isFlashDeal"`
	ExpiryTime        string       `json:"expiryTime"`
	Images            []string     `json:"images"`
	Videos            []string     `json:"videos"`
}

// AttributeLocks marks which variant attributes are backend-authoritative
// and therefore read-only until the sub-SKU selection changes. Lock
// transitions happen only inside the form service.
type AttributeLocks struct {
	SimType bool `json:"simType"`
	Color   bool `json:"color"`
	Country bool `json:"country"`
}

// VariantRow is one row of the bulk multi-variant entry grid. Rows share
// the base form's specification, purchase type and flags, and override
// the variant-distinguishing fields.
type VariantRow struct {
	SubSkuFamilyID   string `json:"subSkuFamilyId"`
	SubSkuFamilyName string `json:"subSkuFamilyName"`
	SimType          string `json:"simType"`
	Color            string `json:"color"`
	RAM              string `json:"ram"`
	Storage          string `json:"storage"`
	Condition        string `json:"condition"`
	Price            string `json:"price"`
	Stock            string `json:"stock"`
	MOQ              string `json:"moq"`
	Country          string `json:"country"`

	// SubmittedID is the backend product ID once the row has been
	// accepted. A retry after a partial bulk failure skips such rows.
	SubmittedID string `json:"submittedId,omitempty"`
}

// FormStatus tracks the submit lifecycle of a form session. "Invalid" is
// not a distinct status: it is Editing plus a false Valid flag.
type FormStatus string

const (
	FormStatusEditing    FormStatus = "editing"
	FormStatusSubmitting FormStatus = "submitting"
	FormStatusSubmitted  FormStatus = "submitted"
)

// FormSession is a server-side product form instance, owned exclusively
// by the seller who opened it. It lives in Redis with a TTL and is
// discarded on close or adopted by the backend on submit.
type FormSession struct {
	ID        string `json:"id"`
	SellerID  string `json:"sellerId"`
	ProductID string `json:"productId,omitempty"` // set in edit mode

	Form     ProductFormState `json:"form"`
	Locks    AttributeLocks   `json:"locks"`
	Variants []VariantRow     `json:"variants,omitempty"`

	// GroupCode is minted on the first bulk submit attempt and reused
	// on retries, so a resubmit after a partial failure keeps the
	// surviving rows in the same variant group.
	GroupCode string `json:"groupCode,omitempty"`

	// Options is the cached sub-SKU option list for the selected SKU
	// family. OptionsGeneration guards against stale fetches overwriting
	// a newer selection's options.
	Options           []SubSkuOption `json:"options,omitempty"`
	OptionsGeneration int            `json:"optionsGeneration"`

	Valid         bool       `json:"valid"`
	InvalidReason string     `json:"invalidReason,omitempty"`
	AutoMatchHint string     `json:"autoMatchHint,omitempty"`
	Status        FormStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OptionByID looks up a cached sub-SKU option. Returns nil when the ID is
// not in the cached list.
func (s *FormSession) OptionByID(id string) *SubSkuOption {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}
