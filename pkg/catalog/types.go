package catalog

import (
	"encoding/json"
	"strings"
	"time"
)

// loginRequest is the credential payload proxied to the backend.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailVerificationRequest struct {
	Email string `json:"email"`
}

type emailConfirmRequest struct {
	Token string `json:"token"`
}

// LoginResult carries the backend access token and the seller it belongs to.
type LoginResult struct {
	Token  string        `json:"token"`
	Seller SellerProfile `json:"seller"`
}

// SellerProfile is the seller's business profile as owned by the backend.
type SellerProfile struct {
	ID              string `json:"_id"`
	BusinessName    string `json:"businessName"`
	OwnerName       string `json:"ownerName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Country         string `json:"country"`
	LogoURL         string `json:"logoUrl"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// SellerProfileUpdate is the subset of profile fields a seller may edit.
type SellerProfileUpdate struct {
	BusinessName string `json:"businessName,omitempty"`
	OwnerName    string `json:"ownerName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Country      string `json:"country,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

// SkuFamily is a backend-defined product model grouping.
type SkuFamily struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// SubSkuFamily is a variant grouping within a SKU family. Label is the
// compound raw string encoding color/SIM type/country. The backend is
// inconsistent about field names across endpoints (_id vs id, value vs
// name), so decoding accepts both aliases.
type SubSkuFamily struct {
	ID    string
	Label string
}

// UnmarshalJSON accepts either {_id, value} or {id, name} shapes.
func (s *SubSkuFamily) UnmarshalJSON(data []byte) error {
	var aux struct {
		UnderscoreID string `json:"_id"`
		ID           string `json:"id"`
		Value        string `json:"value"`
		Name         string `json:"name"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = aux.UnderscoreID
	if s.ID == "" {
		s.ID = aux.ID
	}
	s.Label = aux.Value
	if s.Label == "" {
		s.Label = aux.Name
	}
	return nil
}

// MarshalJSON mirrors the primary backend shape.
func (s SubSkuFamily) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    string `json:"_id"`
		Value string `json:"value"`
	}{ID: s.ID, Value: s.Label})
}

// FlexString decodes a JSON value that legacy product records store
// either as a plain string or as an array of strings; arrays collapse
// to their first element.
type FlexString string

// UnmarshalJSON implements the string-or-array decoding rule.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		if len(list) > 0 {
			*f = FlexString(list[0])
		} else {
			*f = ""
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

// Product is the backend's product record. The console reads it and
// proposes updates; it never owns it.
type Product struct {
	ID                string     `json:"_id"`
	Specification     string     `json:"specification"`
	SpecificationName string     `json:"specificationName"`
	SkuFamilyID       string     `json:"skuFamilyId"`
	SubSkuFamilyID    string     `json:"subSkuFamilyId"`
	SubSkuFamilyName  string     `json:"subSkuFamilyName"`
	SimType           FlexString `json:"simType"`
	Color             string     `json:"color"`
	RAM               FlexString `json:"ram"`
	Storage           FlexString `json:"storage"`
	Condition         string     `json:"condition"`
	Price             float64    `json:"price"`
	Stock             int        `json:"stock"`
	Country           string     `json:"country"`
	MOQ               int        `json:"moq"`
	PurchaseType      string     `json:"purchaseType"`
	IsNegotiable      bool       `json:"isNegotiable"`
	IsFlashDeal       bool       `json:"isFlashDeal"`
	ExpiryTime        string     `json:"expiryTime"`
	IsVerified        bool       `json:"isVerified"`
	IsApproved        bool       `json:"isApproved"`
	CanVerify         bool       `json:"canVerify"`
	CanApprove        bool       `json:"canApprove"`
	Images            []string   `json:"images"`
	Videos            []string   `json:"videos"`
	GroupCode         string     `json:"groupCode,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// ProductList is the paged product listing response.
type ProductList struct {
	Docs       []Product `json:"docs"`
	TotalDocs  int       `json:"totalDocs"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

// ProductPayload is the create/update proposal shape. Numeric fields are
// coerced to numbers and flags to booleans before transmission; only the
// declared fields are sent.
type ProductPayload struct {
	Specification     string   `json:"specification"`
	SpecificationName string   `json:"specificationName,omitempty"`
	SkuFamilyID       string   `json:"skuFamilyId"`
	SubSkuFamilyID    string   `json:"subSkuFamilyId,omitempty"`
	SubSkuFamilyName  string   `json:"subSkuFamilyName,omitempty"`
	SimType           string   `json:"simType,omitempty"`
	Color             string   `json:"color,omitempty"`
	RAM               string   `json:"ram,omitempty"`
	Storage           string   `json:"storage,omitempty"`
	Condition         string   `json:"condition,omitempty"`
	Price             float64  `json:"price"`
	Stock             int      `json:"stock"`
	Country           string   `json:"country,omitempty"`
	MOQ               int      `json:"moq"`
	PurchaseType      string   `json:"purchaseType"`
	IsNegotiable      bool     `json:"isNegotiable"`
	IsFlashDeal       bool     `json:"isFlashDeal"`
	ExpiryTime        string   `json:"expiryTime,omitempty"`
	Images            []string `json:"images,omitempty"`
	Videos            []string `json:"videos,omitempty"`
	GroupCode         string   `json:"groupCode,omitempty"`
}

// ProductVersion is one entry in a product's version history.
type ProductVersion struct {
	Version   int       `json:"version"`
	Product   Product   `json:"product"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}
