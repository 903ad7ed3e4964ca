package domain

import "time"

// MaxTicketsPerCompetition caps how many tickets one session may hold for a
// single competition, both on insert and on merge.
const MaxTicketsPerCompetition = 10

// CartItem is one competition's ticket quantity inside a session-scoped cart.
// A session holds at most one item per competition; repeated adds merge.
type CartItem struct {
	ID            int64     `json:"id"`
	SessionID     string    `json:"sessionId"`
	CompetitionID int64     `json:"competitionId"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ValidQuantity reports whether q is inside the allowed per-add range.
func ValidQuantity(q int) bool {
	return q >= 1 && q <= MaxTicketsPerCompetition
}
