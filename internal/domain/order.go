package domain

import "time"

// Order status values. An order is created pending and flips to completed
// exactly once; abandoned checkouts stay pending forever.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

// Order is a checkout attempt. PaymentSessionID is empty between order
// creation and the gateway responding with a hosted session.
type Order struct {
	ID               int64     `json:"id"`
	SessionID        string    `json:"sessionId"`
	TotalAmount      Amount    `json:"totalAmount"`
	PaymentSessionID string    `json:"paymentSessionId,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// OrderItem snapshots one cart line at order time. TicketPrice is the price
// charged, immune to later competition price edits.
type OrderItem struct {
	ID            int64  `json:"id"`
	OrderID       int64  `json:"orderId"`
	CompetitionID int64  `json:"competitionId"`
	Quantity      int    `json:"quantity"`
	TicketPrice   Amount `json:"ticketPrice"`
}
