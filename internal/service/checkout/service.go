package checkout

import (
	"context"
	"fmt"
	"log"

	"prizedraw/internal/domain"
	"prizedraw/internal/gateway"
	orderrepo "prizedraw/internal/repository/order"
)

type Service struct {
	carts        cartRepo
	competitions competitionRepo
	orders       orderRepo
	gateway      gateway.PaymentGateway
	logger       *log.Logger
}

type cartRepo interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
}

type competitionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Competition, error)
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	SetPaymentSession(ctx context.Context, orderID int64, paymentSessionID string) error
}

func New(carts cartRepo, competitions competitionRepo, orders orderRepo, gw gateway.PaymentGateway, logger *log.Logger) *Service {
	return &Service{
		carts:        carts,
		competitions: competitions,
		orders:       orders,
		gateway:      gw,
		logger:       logger,
	}
}

// CreateSession builds a pending order from the session's cart and opens a
// hosted checkout session for it. The returned URL is where the buyer pays.
//
// Write order matters: the order and its priced item snapshots are persisted
// before the gateway is called, and the gateway's session id is attached in a
// second write once known. The order is not reachable by the success-page
// poll until that second write lands.
func (s *Service) CreateSession(ctx context.Context, sessionID, origin string) (string, error) {
	if s.gateway == nil {
		return "", gateway.ErrNotConfigured
	}

	items, err := s.carts.ListBySession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", domain.ErrEmptyCart
	}

	var total domain.Amount
	lineItems := make([]gateway.LineItem, 0, len(items))
	orderItems := make([]orderrepo.ItemInput, 0, len(items))
	for _, item := range items {
		comp, err := s.competitions.GetByID(ctx, item.CompetitionID)
		if err != nil {
			// A vanished competition is a hard stop; a partial order must
			// never reach the gateway.
			return "", fmt.Errorf("competition %d: %w", item.CompetitionID, err)
		}

		unit := comp.TicketPrice
		total += unit * domain.Amount(item.Quantity)
		lineItems = append(lineItems, gateway.LineItem{
			Name:        comp.Title,
			Description: fmt.Sprintf("%d ticket(s) for %s", item.Quantity, comp.Title),
			UnitAmount:  unit,
			Quantity:    item.Quantity,
		})
		orderItems = append(orderItems, orderrepo.ItemInput{
			CompetitionID: comp.ID,
			Quantity:      item.Quantity,
			TicketPrice:   unit,
		})
	}

	order, err := s.orders.Create(ctx, orderrepo.CreateOrderInput{
		SessionID:   sessionID,
		TotalAmount: total,
		Items:       orderItems,
	})
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	sess, err := s.gateway.CreateSession(ctx, gateway.CreateSessionInput{
		LineItems:     lineItems,
		SuccessURL:    origin + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/cart",
		CartSessionID: sessionID,
	})
	if err != nil {
		return "", err
	}

	if err := s.orders.SetPaymentSession(ctx, order.ID, sess.ID); err != nil {
		// The gateway session exists but the order cannot be found by the
		// poll path now. Surface the failure instead of handing out a
		// checkout URL for an orphaned order.
		s.logger.Printf("order %d: attach payment session %s failed: %v", order.ID, sess.ID, err)
		return "", fmt.Errorf("attach payment session: %w", err)
	}

	s.logger.Printf("order %d created for session %s, total %s", order.ID, sessionID, total)
	return sess.URL, nil
}
