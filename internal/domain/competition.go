package domain

import "time"

// Competition is a prize draw customers buy tickets for. SoldTickets is only
// ever advanced by the order completion transaction.
type Competition struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	TicketPrice  Amount    `json:"ticketPrice"`
	TotalTickets int       `json:"totalTickets"`
	SoldTickets  int       `json:"soldTickets"`
	EndDate      time.Time `json:"endDate"`
	Featured     bool      `json:"featured"`
}

// TicketsLeft reports how many tickets remain for sale.
func (c Competition) TicketsLeft() int {
	return c.TotalTickets - c.SoldTickets
}
