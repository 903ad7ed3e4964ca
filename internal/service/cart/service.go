package cart

import (
	"context"
	"errors"

	"prizedraw/internal/domain"
)

type Service struct {
	repo         cartRepo
	competitions competitionRepo
}

type cartRepo interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	GetBySessionAndCompetition(ctx context.Context, sessionID string, competitionID int64) (*domain.CartItem, error)
	GetByID(ctx context.Context, id int64) (*domain.CartItem, error)
	Insert(ctx context.Context, sessionID string, competitionID int64, quantity int) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id int64) error
}

type competitionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Competition, error)
}

func New(repo cartRepo, competitions competitionRepo) *Service {
	return &Service{repo: repo, competitions: competitions}
}

// ItemDetail pairs a cart item with the competition it is for, the shape the
// storefront renders.
type ItemDetail struct {
	Item        domain.CartItem
	Competition *domain.Competition
}

// Add puts quantity tickets for a competition into the session's cart. A
// second add for the same competition merges by summing; a merged sum over
// the per-competition cap is rejected outright rather than clamped, so the
// caller can tell the user why nothing changed.
//
// The inventory check reads sold counts without any reservation, so two
// sessions racing for the last tickets can both pass. That is a best-effort
// guard; the authoritative accounting happens at order completion.
func (s *Service) Add(ctx context.Context, sessionID string, competitionID int64, quantity int) (*ItemDetail, error) {
	if !domain.ValidQuantity(quantity) {
		return nil, domain.ErrInvalidQuantity
	}

	comp, err := s.competitions.GetByID(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	if comp.SoldTickets+quantity > comp.TotalTickets {
		return nil, domain.ErrInsufficientInventory
	}

	existing, err := s.repo.GetBySessionAndCompetition(ctx, sessionID, competitionID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var item *domain.CartItem
	if existing != nil {
		merged := existing.Quantity + quantity
		if merged > domain.MaxTicketsPerCompetition {
			return nil, domain.ErrQuantityCapExceeded
		}
		item, err = s.repo.UpdateQuantity(ctx, existing.ID, merged)
	} else {
		item, err = s.repo.Insert(ctx, sessionID, competitionID, quantity)
	}
	if err != nil {
		return nil, err
	}
	return &ItemDetail{Item: *item, Competition: comp}, nil
}

// UpdateQuantity replaces an item's quantity outright.
func (s *Service) UpdateQuantity(ctx context.Context, id int64, quantity int) (*ItemDetail, error) {
	if !domain.ValidQuantity(quantity) {
		return nil, domain.ErrInvalidQuantity
	}
	item, err := s.repo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	comp, err := s.competitions.GetByID(ctx, item.CompetitionID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return &ItemDetail{Item: *item, Competition: comp}, nil
}

// Remove deletes a cart item. Removing an id that no longer exists succeeds,
// so a double-clicked delete button stays quiet.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List returns the session's cart in insertion order with competitions
// embedded.
func (s *Service) List(ctx context.Context, sessionID string) ([]ItemDetail, error) {
	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemDetail, 0, len(items))
	for _, item := range items {
		comp, err := s.competitions.GetByID(ctx, item.CompetitionID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		out = append(out, ItemDetail{Item: item, Competition: comp})
	}
	return out, nil
}
