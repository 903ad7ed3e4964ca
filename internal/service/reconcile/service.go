package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"prizedraw/internal/domain"
	"prizedraw/internal/gateway"
)

// Service converts pending orders into completed ones exactly once. The two
// entry points, gateway push notifications and success-page polling, are thin
// adapters over the same applyCompletion core, so a duplicate webhook, a lost
// webhook, or a user hammering refresh all collapse into one idempotent
// transition.
type Service struct {
	orders         orderRepo
	competitions   competitionRepo
	gateway        gateway.PaymentGateway
	logger         *log.Logger
	gatewayTimeout time.Duration
}

type orderRepo interface {
	GetByPaymentSession(ctx context.Context, paymentSessionID string) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	Complete(ctx context.Context, orderID int64) (bool, error)
}

type competitionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Competition, error)
}

func New(orders orderRepo, competitions competitionRepo, gw gateway.PaymentGateway, logger *log.Logger, gatewayTimeout time.Duration) *Service {
	return &Service{
		orders:         orders,
		competitions:   competitions,
		gateway:        gw,
		logger:         logger,
		gatewayTimeout: gatewayTimeout,
	}
}

// HandleEvent is the push entry point. The payload is authenticated before
// any order state is read; a bad signature is a security rejection, not an
// application error. Genuine events for sessions this system never issued
// are acknowledged and dropped, since asking the gateway to retry them
// cannot help.
func (s *Service) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		return gateway.ErrNotConfigured
	}

	ev, err := s.gateway.VerifyEvent(payload, signature)
	if err != nil {
		return err
	}
	if ev == nil {
		return nil
	}

	order, err := s.orders.GetByPaymentSession(ctx, ev.PaymentSessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("webhook for unknown payment session %s, ignoring", ev.PaymentSessionID)
			return nil
		}
		return err
	}

	_, err = s.applyCompletion(ctx, order)
	return err
}

// ItemDetail pairs an order item with its competition for the success page.
type ItemDetail struct {
	Item        domain.OrderItem
	Competition *domain.Competition
}

// Result is the pull entry point's answer: the order as it stands plus its
// snapshotted items.
type Result struct {
	Order *domain.Order
	Items []ItemDetail
}

// Resolve is the pull entry point. While the order is pending it asks the
// gateway whether the session has been paid, and if so runs the same
// completion core the webhook uses. This keeps orders able to finish even
// when the push notification never arrives, at the price of a gateway round
// trip on the success page.
func (s *Service) Resolve(ctx context.Context, paymentSessionID string) (*Result, error) {
	if s.gateway == nil {
		return nil, gateway.ErrNotConfigured
	}

	order, err := s.orders.GetByPaymentSession(ctx, paymentSessionID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderPending {
		gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
		paid, err := s.gateway.SessionPaid(gctx, paymentSessionID)
		cancel()
		if err != nil {
			// Transient: the order stays pending and the client retries.
			return nil, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
		}
		if paid {
			if _, err := s.applyCompletion(ctx, order); err != nil {
				return nil, err
			}
			// Whether this call won the transition or lost it to a
			// concurrent signal, the order is completed now.
			order.Status = domain.OrderCompleted
		}
	}

	items, err := s.orders.ListItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	details := make([]ItemDetail, 0, len(items))
	for _, item := range items {
		comp, err := s.competitions.GetByID(ctx, item.CompetitionID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		details = append(details, ItemDetail{Item: item, Competition: comp})
	}

	return &Result{Order: order, Items: details}, nil
}

// applyCompletion is the single idempotent core both entry points share. The
// repository's conditional transition decides the race; this layer only
// reports the outcome.
func (s *Service) applyCompletion(ctx context.Context, order *domain.Order) (bool, error) {
	applied, err := s.orders.Complete(ctx, order.ID)
	if err != nil {
		return false, fmt.Errorf("complete order %d: %w", order.ID, err)
	}
	if applied {
		s.logger.Printf("order %d completed, inventory applied", order.ID)
	} else {
		s.logger.Printf("order %d already completed, no-op", order.ID)
	}
	return applied, nil
}
