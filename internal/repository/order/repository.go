package order

import (
	"context"

	"prizedraw/internal/domain"
)

// CreateOrderInput carries everything persisted at checkout time: the pending
// order row plus its immutable item snapshots. The payment session id is
// attached later, once the gateway has answered.
type CreateOrderInput struct {
	SessionID   string
	TotalAmount domain.Amount
	Items       []ItemInput
}

type ItemInput struct {
	CompetitionID int64
	Quantity      int
	TicketPrice   domain.Amount
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	SetPaymentSession(ctx context.Context, orderID int64, paymentSessionID string) error
	GetByPaymentSession(ctx context.Context, paymentSessionID string) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)

	// Complete performs the whole reconciliation write in one transaction:
	// a compare-and-swap of status from pending to completed, the sold-ticket
	// increments for every order item, and the owning session's cart clear.
	// It reports false when another caller already won the transition, in
	// which case nothing was written.
	Complete(ctx context.Context, orderID int64) (bool, error)
}
