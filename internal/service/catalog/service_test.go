package catalog

import (
	"context"
	"testing"

	"prizedraw/internal/domain"
)

type stubRepo struct {
	all          []domain.Competition
	byCategory   []domain.Competition
	lastCategory string
	listCalls    int
}

func (s *stubRepo) List(_ context.Context) ([]domain.Competition, error) {
	s.listCalls++
	return s.all, nil
}

func (s *stubRepo) ListByCategory(_ context.Context, category string) ([]domain.Competition, error) {
	s.lastCategory = category
	return s.byCategory, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Competition, error) {
	return nil, domain.ErrNotFound
}

func TestListAllWhenCategoryBlank(t *testing.T) {
	repo := &stubRepo{all: []domain.Competition{{ID: 1}, {ID: 2}}}
	svc := New(repo)

	for _, category := range []string{"", "   "} {
		got, err := svc.List(context.Background(), category)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected full catalog, got %d", len(got))
		}
	}
	if repo.lastCategory != "" {
		t.Fatalf("expected no category filter, got %q", repo.lastCategory)
	}
}

func TestListByCategoryTrims(t *testing.T) {
	repo := &stubRepo{byCategory: []domain.Competition{{ID: 3, Category: "Travel"}}}
	svc := New(repo)

	got, err := svc.List(context.Background(), "  Travel ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCategory != "Travel" {
		t.Fatalf("expected trimmed category, got %q", repo.lastCategory)
	}
	if len(got) != 1 || got[0].Category != "Travel" {
		t.Fatalf("unexpected result %+v", got)
	}
}
