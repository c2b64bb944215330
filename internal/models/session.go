package models

import "time"

// SellerSession is a console login session. The access JWT references it
// by ID; the refresh token is stored only as a bcrypt hash. The backend
// access token itself lives in Redis alongside the session, never here.
type SellerSession struct {
	ID          string     `db:"id" json:"id"`
	SellerID    string     `db:"seller_id" json:"sellerId"`
	Email       string     `db:"email" json:"email"`
	RefreshHash string     `db:"refresh_hash" json:"-"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	ExpiresAt   time.Time  `db:"expires_at" json:"expiresAt"`
	RevokedAt   *time.Time `db:"revoked_at" json:"revokedAt,omitempty"`
}

// Active reports whether the session can still be refreshed.
func (s *SellerSession) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
