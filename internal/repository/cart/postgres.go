package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prizedraw/internal/domain"
)

const cartColumns = `id, session_id, competition_id, quantity, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	// Insertion order keeps checkout line items and totals deterministic.
	const q = `
SELECT ` + cartColumns + `
FROM cart_items
WHERE session_id = $1
ORDER BY created_at, id
`
	rows, err := r.pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetBySessionAndCompetition(ctx context.Context, sessionID string, competitionID int64) (*domain.CartItem, error) {
	const q = `
SELECT ` + cartColumns + `
FROM cart_items
WHERE session_id = $1 AND competition_id = $2
`
	return r.queryOne(ctx, q, sessionID, competitionID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.CartItem, error) {
	const q = `
SELECT ` + cartColumns + `
FROM cart_items
WHERE id = $1
`
	return r.queryOne(ctx, q, id)
}

func (r *postgresRepo) Insert(ctx context.Context, sessionID string, competitionID int64, quantity int) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (session_id, competition_id, quantity)
VALUES ($1, $2, $3)
RETURNING ` + cartColumns + `
`
	return r.queryOne(ctx, q, sessionID, competitionID, quantity)
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error) {
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE id = $2
RETURNING ` + cartColumns + `
`
	return r.queryOne(ctx, q, quantity, id)
}

// Delete is idempotent: removing an absent item is not an error.
func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	return err
}

func (r *postgresRepo) queryOne(ctx context.Context, q string, args ...interface{}) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := scanItem(r.pool.QueryRow(ctx, q, args...), &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func scanItem(row pgx.Row, item *domain.CartItem) error {
	return row.Scan(
		&item.ID,
		&item.SessionID,
		&item.CompetitionID,
		&item.Quantity,
		&item.CreatedAt,
	)
}
