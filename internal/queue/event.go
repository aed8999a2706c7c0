// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published when a fan issues a viewing ticket while
// a game is live. It carries enough information for downstream consumers
// to log or trigger notifications without reading the primary store.
type TicketIssuedEvent struct {
	TicketID string `json:"ticket_id"`
	Type     string `json:"type"`
	Team     string `json:"team"`
	TeamName string `json:"team_name"`
	Opponent string `json:"opponent"`
	Stadium  string `json:"stadium"`
	Date     string `json:"date"`
	IssuedAt string `json:"issued_at"`
}
