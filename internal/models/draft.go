package models

import (
	"encoding/json"
	"time"
)

// Draft is a saved form session a seller can resume later. Drafts are
// console convenience state, not business data: the product of record
// only exists once the backend accepts a submit.
type Draft struct {
	ID        string          `db:"id" json:"id"`
	SellerID  string          `db:"seller_id" json:"sellerId"`
	Title     string          `db:"title" json:"title"`
	ProductID *string         `db:"product_id" json:"productId,omitempty"` // set when drafted from an edit
	Payload   json.RawMessage `db:"payload" json:"payload"`                // serialized FormSession
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
	ExpiresAt time.Time       `db:"expires_at" json:"expiresAt"`
}
