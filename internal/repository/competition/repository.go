package competition

import (
	"context"

	"prizedraw/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Competition, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Competition, error)
	GetByID(ctx context.Context, id int64) (*domain.Competition, error)

	// Upsert inserts a competition or, when the title already exists,
	// refreshes its catalog fields. Sold counts are never touched.
	Upsert(ctx context.Context, c domain.Competition) (*domain.Competition, error)
}
