package model

import "time"

// TicketType distinguishes stadium attendance tickets from TV viewing
// tickets.
type TicketType string

const (
	TicketAttendance TicketType = "attendance"
	TicketTV         TicketType = "tv"
)

// ValidTicketType reports whether t is a known ticket kind.
func ValidTicketType(t TicketType) bool {
	return t == TicketAttendance || t == TicketTV
}

// Ticket is a collectible record proving that a fan attended or watched
// a game.  Tickets are created only while an issuance window is open,
// are never mutated afterwards and are never deleted: the collection
// only grows.  The global ticket list is stored under the "tickets"
// namespace, independent of any team namespace.
type Ticket struct {
	ID        string     `json:"id"`
	Type      TicketType `json:"type"`
	Team      string     `json:"team"`
	Date      string     `json:"date"`
	GameID    string     `json:"gameId,omitempty"`
	Opponent  string     `json:"opponent,omitempty"`
	Stadium   string     `json:"stadium,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
