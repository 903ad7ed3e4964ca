package cart

import (
	"context"

	"prizedraw/internal/domain"
)

type Repository interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	GetBySessionAndCompetition(ctx context.Context, sessionID string, competitionID int64) (*domain.CartItem, error)
	GetByID(ctx context.Context, id int64) (*domain.CartItem, error)
	Insert(ctx context.Context, sessionID string, competitionID int64, quantity int) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id int64) error
}
