package gateway

import (
	"context"
	"errors"

	"prizedraw/internal/domain"
)

var (
	// ErrNotConfigured means no payment gateway credentials were supplied.
	ErrNotConfigured = errors.New("payment gateway is not configured")

	// ErrInvalidSignature means a push notification failed signature
	// verification and must be rejected before any state is read.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidPayload means a push notification carried a body that could
	// not be decoded.
	ErrInvalidPayload = errors.New("invalid webhook payload")

	// ErrUnavailable wraps network or provider failures on on-demand status
	// lookups. Callers treat it as transient and retry.
	ErrUnavailable = errors.New("payment gateway unavailable")
)

// LineItem is one priced checkout line submitted to the hosted payment page.
// UnitAmount is in minor units, exactly what the gateway bills.
type LineItem struct {
	Name        string
	Description string
	UnitAmount  domain.Amount
	Quantity    int
}

// CreateSessionInput describes a hosted checkout session. CartSessionID is
// round-tripped through the gateway's opaque metadata.
type CreateSessionInput struct {
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	CartSessionID string
}

// Session identifies a hosted checkout session and where to send the buyer.
type Session struct {
	ID  string
	URL string
}

// CompletionEvent is a verified push notification that a checkout session
// finished paying.
type CompletionEvent struct {
	PaymentSessionID string
}

// PaymentGateway is the external payment provider boundary: it creates hosted
// checkout sessions, reports their payment status on demand, and
// authenticates push notifications.
type PaymentGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error)
	SessionPaid(ctx context.Context, paymentSessionID string) (bool, error)

	// VerifyEvent authenticates a raw push payload against the shared secret.
	// A nil event with nil error means the notification was genuine but of a
	// type this system does not act on.
	VerifyEvent(payload []byte, signature string) (*CompletionEvent, error)
}
