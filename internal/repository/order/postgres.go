package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prizedraw/internal/domain"
)

const orderColumns = `id, session_id, total_amount_pence, COALESCE(payment_session_id, ''), status, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (session_id, total_amount_pence, status)
VALUES ($1, $2, 'pending')
RETURNING ` + orderColumns + `
`
	var o domain.Order
	if err := scanOrder(tx.QueryRow(ctx, insertOrder, in.SessionID, in.TotalAmount), &o); err != nil {
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, competition_id, quantity, ticket_price_pence)
VALUES ($1, $2, $3, $4)
`
	for _, item := range in.Items {
		if _, err := tx.Exec(ctx, insertItem, o.ID, item.CompetitionID, item.Quantity, item.TicketPrice); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) SetPaymentSession(ctx context.Context, orderID int64, paymentSessionID string) error {
	const q = `
UPDATE orders
SET payment_session_id = $1
WHERE id = $2
`
	cmd, err := r.pool.Exec(ctx, q, paymentSessionID, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetByPaymentSession(ctx context.Context, paymentSessionID string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE payment_session_id = $1
`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, paymentSessionID), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const q = `
SELECT id, order_id, competition_id, quantity, ticket_price_pence
FROM order_items
WHERE order_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.CompetitionID, &item.Quantity, &item.TicketPrice); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Complete flips the order pending->completed and applies its downstream
// effects. The conditional UPDATE is the race arbiter: under concurrent
// completion signals exactly one transaction sees a row change, and only that
// transaction increments sold tickets and empties the cart. Everything
// commits or nothing does, so a crash mid-way leaves the order pending and
// the counters untouched.
func (r *postgresRepo) Complete(ctx context.Context, orderID int64) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	const cas = `
UPDATE orders
SET status = 'completed'
WHERE id = $1 AND status = 'pending'
RETURNING session_id
`
	var sessionID string
	if err := tx.QueryRow(ctx, cas, orderID).Scan(&sessionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race, or the order never existed. Either way there is
			// nothing to apply.
			return false, nil
		}
		return false, err
	}

	const increment = `
UPDATE competitions
SET sold_tickets = sold_tickets + items.quantity
FROM (
	SELECT competition_id, SUM(quantity) AS quantity
	FROM order_items
	WHERE order_id = $1
	GROUP BY competition_id
) AS items
WHERE competitions.id = items.competition_id
`
	if _, err := tx.Exec(ctx, increment, orderID); err != nil {
		return false, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.ID,
		&o.SessionID,
		&o.TotalAmount,
		&o.PaymentSessionID,
		&o.Status,
		&o.CreatedAt,
	)
}
