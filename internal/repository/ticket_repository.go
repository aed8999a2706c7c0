package repository

import (
	"context"
	"encoding/json"

	"github.com/baseballplanet/fan-engagement/internal/kv"
	"github.com/baseballplanet/fan-engagement/internal/model"
)

// ticketsKey is the single global namespace holding all issued tickets,
// independent of team namespaces.
const ticketsKey = "tickets"

// TicketRepo owns the global ticket collection.  Tickets are created by
// issuance (or seeding) and never mutated or deleted afterwards.
type TicketRepo struct {
	store kv.Store
}

// NewTicketRepo returns a TicketRepo persisting through the given store.
func NewTicketRepo(store kv.Store) *TicketRepo {
	return &TicketRepo{store: store}
}

// List returns every ticket in issuance order.  Missing or corrupt
// blobs degrade to an empty collection.
func (r *TicketRepo) List(ctx context.Context) ([]model.Ticket, error) {
	raw, err := r.store.Get(ctx, ticketsKey)
	if err != nil {
		if err == kv.ErrNotFound {
			return []model.Ticket{}, nil
		}
		return nil, err
	}
	var tickets []model.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return []model.Ticket{}, nil
	}
	return tickets, nil
}

// ListByTeam returns the tickets collected for one team, in issuance order.
func (r *TicketRepo) ListByTeam(ctx context.Context, team model.Team) ([]model.Ticket, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Ticket, 0, len(all))
	for _, t := range all {
		if t.Team == team.ID() {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetByID returns the ticket with the given ID, or nil when absent.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*model.Ticket, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Append adds one ticket to the global list and persists it.
func (r *TicketRepo) Append(ctx context.Context, ticket model.Ticket) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	all = append(all, ticket)
	return r.save(ctx, all)
}

// EnsureSeeded inserts the given tickets unless a ticket with the same
// ID already exists.  Seed IDs are stable, which makes repeated calls
// from calendar reconciliation idempotent.
func (r *TicketRepo) EnsureSeeded(ctx context.Context, seeds []model.Ticket) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(all))
	for _, t := range all {
		known[t.ID] = true
	}
	added := false
	for _, s := range seeds {
		if !known[s.ID] {
			all = append(all, s)
			added = true
		}
	}
	if !added {
		return nil
	}
	return r.save(ctx, all)
}

func (r *TicketRepo) save(ctx context.Context, tickets []model.Ticket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, ticketsKey, raw)
}
