package competition

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prizedraw/internal/domain"
)

const competitionColumns = `id, title, description, image, category, ticket_price_pence, total_tickets, sold_tickets, end_date, featured`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Competition, error) {
	const q = `
SELECT ` + competitionColumns + `
FROM competitions
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompetitions(rows)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Competition, error) {
	const q = `
SELECT ` + competitionColumns + `
FROM competitions
WHERE category = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompetitions(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Competition, error) {
	const q = `
SELECT ` + competitionColumns + `
FROM competitions
WHERE id = $1
`
	var c domain.Competition
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Image,
		&c.Category,
		&c.TicketPrice,
		&c.TotalTickets,
		&c.SoldTickets,
		&c.EndDate,
		&c.Featured,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Competition) (*domain.Competition, error) {
	const q = `
INSERT INTO competitions (title, description, image, category, ticket_price_pence, total_tickets, end_date, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (title) DO UPDATE SET
	description = EXCLUDED.description,
	image = EXCLUDED.image,
	category = EXCLUDED.category,
	ticket_price_pence = EXCLUDED.ticket_price_pence,
	total_tickets = EXCLUDED.total_tickets,
	end_date = EXCLUDED.end_date,
	featured = EXCLUDED.featured
RETURNING ` + competitionColumns + `
`
	var out domain.Competition
	if err := r.pool.QueryRow(ctx, q, c.Title, c.Description, c.Image, c.Category, c.TicketPrice, c.TotalTickets, c.EndDate, c.Featured).Scan(
		&out.ID,
		&out.Title,
		&out.Description,
		&out.Image,
		&out.Category,
		&out.TicketPrice,
		&out.TotalTickets,
		&out.SoldTickets,
		&out.EndDate,
		&out.Featured,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func scanCompetitions(rows pgx.Rows) ([]domain.Competition, error) {
	var out []domain.Competition
	for rows.Next() {
		var c domain.Competition
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Image,
			&c.Category,
			&c.TicketPrice,
			&c.TotalTickets,
			&c.SoldTickets,
			&c.EndDate,
			&c.Featured,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
