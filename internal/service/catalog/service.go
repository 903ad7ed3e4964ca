package catalog

import (
	"context"
	"strings"

	"prizedraw/internal/domain"
)

type Service struct {
	repo competitionRepo
}

type competitionRepo interface {
	List(ctx context.Context) ([]domain.Competition, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Competition, error)
	GetByID(ctx context.Context, id int64) (*domain.Competition, error)
}

func New(repo competitionRepo) *Service {
	return &Service{repo: repo}
}

// List returns all competitions, optionally narrowed to one category.
func (s *Service) List(ctx context.Context, category string) ([]domain.Competition, error) {
	if category = strings.TrimSpace(category); category != "" {
		return s.repo.ListByCategory(ctx, category)
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Competition, error) {
	return s.repo.GetByID(ctx, id)
}
