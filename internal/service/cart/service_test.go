package cart

import (
	"context"
	"errors"
	"testing"

	"prizedraw/internal/domain"
)

type stubCartRepo struct {
	listItems       []domain.CartItem
	listErr         error
	existing        *domain.CartItem
	existingErr     error
	inserted        *domain.CartItem
	insertErr       error
	updated         *domain.CartItem
	updateErr       error
	deleteErr       error
	insertCalls     int
	updateCalls     int
	lastInsertQty   int
	lastUpdateID    int64
	lastUpdateQty   int
	lastDeleteID    int64
	lastInsertSess  string
	lastInsertComp  int64
}

func (s *stubCartRepo) ListBySession(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.listItems, s.listErr
}

func (s *stubCartRepo) GetBySessionAndCompetition(_ context.Context, _ string, _ int64) (*domain.CartItem, error) {
	if s.existingErr != nil {
		return nil, s.existingErr
	}
	if s.existing == nil {
		return nil, domain.ErrNotFound
	}
	return s.existing, nil
}

func (s *stubCartRepo) GetByID(_ context.Context, _ int64) (*domain.CartItem, error) {
	return s.existing, s.existingErr
}

func (s *stubCartRepo) Insert(_ context.Context, sessionID string, competitionID int64, quantity int) (*domain.CartItem, error) {
	s.insertCalls++
	s.lastInsertSess = sessionID
	s.lastInsertComp = competitionID
	s.lastInsertQty = quantity
	return s.inserted, s.insertErr
}

func (s *stubCartRepo) UpdateQuantity(_ context.Context, id int64, quantity int) (*domain.CartItem, error) {
	s.updateCalls++
	s.lastUpdateID = id
	s.lastUpdateQty = quantity
	return s.updated, s.updateErr
}

func (s *stubCartRepo) Delete(_ context.Context, id int64) error {
	s.lastDeleteID = id
	return s.deleteErr
}

type stubCompetitionRepo struct {
	comps map[int64]*domain.Competition
	err   error
}

func (s *stubCompetitionRepo) GetByID(_ context.Context, id int64) (*domain.Competition, error) {
	if s.err != nil {
		return nil, s.err
	}
	comp, ok := s.comps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return comp, nil
}

func openCompetition(id int64) *domain.Competition {
	return &domain.Competition{ID: id, Title: "Win a Console", TotalTickets: 100, SoldTickets: 10}
}

func TestAddInvalidQuantity(t *testing.T) {
	repo := &stubCartRepo{}
	svc := New(repo, &stubCompetitionRepo{comps: map[int64]*domain.Competition{1: openCompetition(1)}})

	for _, q := range []int{0, -1, 11} {
		if _, err := svc.Add(context.Background(), "sess", 1, q); !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
	if repo.insertCalls != 0 || repo.updateCalls != 0 {
		t.Fatalf("expected no writes, got %d inserts %d updates", repo.insertCalls, repo.updateCalls)
	}
}

func TestAddUnknownCompetition(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubCompetitionRepo{comps: map[int64]*domain.Competition{}})
	if _, err := svc.Add(context.Background(), "sess", 99, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddInsufficientInventory(t *testing.T) {
	comp := &domain.Competition{ID: 1, TotalTickets: 100, SoldTickets: 98}
	repo := &stubCartRepo{}
	svc := New(repo, &stubCompetitionRepo{comps: map[int64]*domain.Competition{1: comp}})

	if _, err := svc.Add(context.Background(), "sess", 1, 3); !errors.Is(err, domain.ErrInsufficientInventory) {
		t.Fatalf("expected ErrInsufficientInventory, got %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected no insert, got %d", repo.insertCalls)
	}
}

func TestAddExactRemainingInventory(t *testing.T) {
	comp := &domain.Competition{ID: 1, TotalTickets: 100, SoldTickets: 98}
	repo := &stubCartRepo{inserted: &domain.CartItem{ID: 5, CompetitionID: 1, Quantity: 2}}
	svc := New(repo, &stubCompetitionRepo{comps: map[int64]*domain.Competition{1: comp}})

	detail, err := svc.Add(context.Background(), "sess", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Item.Quantity != 2 || detail.Competition != comp {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestAddNewItem(t *testing.T) {
	repo := &stubCartRepo{inserted: &domain.CartItem{ID: 7, CompetitionID: 1, Quantity: 4}}
	svc := New(repo, &stubCompetitionRepo{comps: map[int64]*domain.Competition{1: openCompetition(1)}})

	detail, err := svc.Add(context.Background(), "sess-a", 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.insertCalls != 1 || repo.lastInsertSess != "sess-a" || repo.lastInsertComp != 1 || repo.lastInsertQty != 4 {
		t.Fatalf("unexpected insert: %+v", repo)
	}
	if detail.Item.ID != 7 {
		t.Fatalf("expected item 7, got %d", detail.Item.ID)
	}
}

func TestAddMergesExisting(t *testing.T) {
	repo := &stubCartRepo{
		existing: &domain.CartItem{ID: 3, CompetitionID: 1, Quantity: 4},
		updated:  &domain.CartItem{ID: 3, CompetitionID: 1, Quantity: 8},
	}
	svc := New(repo, &stubCompetitionRepo{comps: map[int64]*domain.Competition{1: openCompetition(1)}})

	detail, err := svc.Add(context.Background(), "sess", 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected merge, got insert")
	}
	if repo.lastUpdateID != 3 || repo.lastUpdateQty != 8 {
		t.Fatalf("expected update to 8 on item 3, got %d on %d", repo.lastUpdateQty, repo.lastUpdateID)
	}
	if detail.Item.Quantity != 8 {
		t.Fatalf("expected merged quantity 8, got %d", detail.Item.Quantity)
	}
}

func TestAddMergeOverCapRejected(t *testing.T) {
	repo := &stubCartRepo{existing: &domain.CartItem{ID: 3, CompetitionID: 1, Quantity: 8}}
	svc := New(repo, &stubCompetitionRepo{comps: map[int64]*domain.Competition{1: openCompetition(1)}})

	if _, err := svc.Add(context.Background(), "sess", 1, 4); !errors.Is(err, domain.ErrQuantityCapExceeded) {
		t.Fatalf("expected ErrQuantityCapExceeded, got %v", err)
	}
	if repo.updateCalls != 0 || repo.insertCalls != 0 {
		t.Fatalf("expected no writes on rejected merge")
	}
}

func TestUpdateQuantityValidation(t *testing.T) {
	repo := &stubCartRepo{}
	svc := New(repo, &stubCompetitionRepo{})

	if _, err := svc.UpdateQuantity(context.Background(), 3, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no update call")
	}
}

func TestUpdateQuantityNotFound(t *testing.T) {
	repo := &stubCartRepo{updateErr: domain.ErrNotFound}
	svc := New(repo, &stubCompetitionRepo{})

	if _, err := svc.UpdateQuantity(context.Background(), 404, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	repo := &stubCartRepo{}
	svc := New(repo, &stubCompetitionRepo{})

	if err := svc.Remove(context.Background(), 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Remove(context.Background(), 12); err != nil {
		t.Fatalf("second remove should stay quiet, got %v", err)
	}
	if repo.lastDeleteID != 12 {
		t.Fatalf("expected delete of 12, got %d", repo.lastDeleteID)
	}
}

func TestListEmbedsCompetitions(t *testing.T) {
	repo := &stubCartRepo{listItems: []domain.CartItem{
		{ID: 1, CompetitionID: 1, Quantity: 2},
		{ID: 2, CompetitionID: 99, Quantity: 1}, // competition since removed
	}}
	svc := New(repo, &stubCompetitionRepo{comps: map[int64]*domain.Competition{1: openCompetition(1)}})

	details, err := svc.List(context.Background(), "sess")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 items, got %d", len(details))
	}
	if details[0].Competition == nil || details[0].Competition.ID != 1 {
		t.Fatalf("expected competition embedded on first item")
	}
	if details[1].Competition != nil {
		t.Fatalf("expected nil competition for removed entry")
	}
}
