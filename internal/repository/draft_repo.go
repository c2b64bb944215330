package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/telmart/console_api/internal/models"
)

// DraftRepository handles data access for saved form drafts.
type DraftRepository struct {
	db *sqlx.DB
}

// NewDraftRepository creates a new DraftRepository.
func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Create inserts a draft.
func (r *DraftRepository) Create(ctx context.Context, draft *models.Draft) error {
	const q = `
        INSERT INTO drafts (id, seller_id, title, product_id, payload, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		draft.ID, draft.SellerID, draft.Title, draft.ProductID, draft.Payload, draft.ExpiresAt,
	).Scan(&draft.CreatedAt, &draft.UpdatedAt)
}

// GetByID returns a seller's draft by ID.
func (r *DraftRepository) GetByID(ctx context.Context, id, sellerID string) (*models.Draft, error) {
	const q = `SELECT * FROM drafts WHERE id = $1 AND seller_id = $2 LIMIT 1`

	var d models.Draft
	if err := r.db.GetContext(ctx, &d, q, id, sellerID); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListBySeller returns a seller's drafts, most recently updated first.
func (r *DraftRepository) ListBySeller(ctx context.Context, sellerID string) ([]models.Draft, error) {
	const q = `
        SELECT * FROM drafts
        WHERE seller_id = $1 AND expires_at > NOW()
        ORDER BY updated_at DESC`

	var drafts []models.Draft
	if err := r.db.SelectContext(ctx, &drafts, q, sellerID); err != nil {
		return nil, err
	}
	return drafts, nil
}

// Delete removes a seller's draft. Returns sql.ErrNoRows when nothing
// matched.
func (r *DraftRepository) Delete(ctx context.Context, id, sellerID string) error {
	const q = `DELETE FROM drafts WHERE id = $1 AND seller_id = $2`

	res, err := r.db.ExecContext(ctx, q, id, sellerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteExpired purges drafts past their expiry. Returns the number of
// rows removed; used by the cleanup worker.
func (r *DraftRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const q = `DELETE FROM drafts WHERE expires_at <= NOW()`

	res, err := r.db.ExecContext(ctx, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
