package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/telmart/console_api/internal/models"
)

// SessionRepository handles data access for seller login sessions. Only
// the durable part lives here (refresh hash, lifetime); the backend
// access token is cached in Redis.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a session row.
func (r *SessionRepository) Create(ctx context.Context, session *models.SellerSession) error {
	const q = `
        INSERT INTO seller_sessions (id, seller_id, email, refresh_hash, expires_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`
	return r.db.QueryRowContext(ctx, q,
		session.ID, session.SellerID, session.Email, session.RefreshHash, session.ExpiresAt,
	).Scan(&session.CreatedAt)
}

// GetByID returns a session by ID.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.SellerSession, error) {
	const q = `SELECT * FROM seller_sessions WHERE id = $1 LIMIT 1`

	var s models.SellerSession
	if err := r.db.GetContext(ctx, &s, q, id); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateRefreshHash rotates the refresh hash after a successful refresh.
func (r *SessionRepository) UpdateRefreshHash(ctx context.Context, id, refreshHash string) error {
	const q = `UPDATE seller_sessions SET refresh_hash = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, refreshHash)
	return err
}

// Revoke marks a session revoked (logout).
func (r *SessionRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	const q = `UPDATE seller_sessions SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id, at)
	return err
}

// DeleteExpired removes sessions past their lifetime. Used by the
// cleanup worker.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const q = `DELETE FROM seller_sessions WHERE expires_at <= NOW()`

	res, err := r.db.ExecContext(ctx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
