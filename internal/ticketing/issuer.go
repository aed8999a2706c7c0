// Package ticketing controls when collectible tickets may be issued and
// performs the issuance itself.  It is the only code path that mutates
// both the global ticket collection and a team's calendar, so the
// cross-entity invariant lives here: every ticket-type calendar entry
// it writes references a ticket that exists.
package ticketing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/baseballplanet/fan-engagement/internal/clock"
	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/queue"
	"github.com/baseballplanet/fan-engagement/internal/repository"
)

// ErrWindowClosed is returned by Issue outside the daily issuance
// window.  Nothing is created in that case.
var ErrWindowClosed = errors.New("issuance window closed")

// Daily issuance window bounds, minutes from midnight local time.
// Tickets can be claimed from 09:00 through 23:59.
const (
	windowOpenMinute  = 9 * 60
	windowCloseMinute = 23*60 + 59
)

// LiveGame describes the mock game that is considered "live" for the
// viewer's team while the window is open.
type LiveGame struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	Stadium   string `json:"stadium"`
}

// WindowStatus is a snapshot of the issuance window for one team.
// Remaining is a display string ("2시간 15분") counting down to the
// window close; it is empty while the window is shut.
type WindowStatus struct {
	Open      bool      `json:"open"`
	Remaining string    `json:"remaining,omitempty"`
	Game      *LiveGame `json:"game,omitempty"`
}

// Publisher sends a ticket-issued event to the message broker.  Errors
// are the publisher's to report; Issue ignores them so broker outages
// never block issuance.
type Publisher func(ctx context.Context, event queue.TicketIssuedEvent) error

// Issuer creates tickets and their companion calendar entries.
type Issuer struct {
	clk     clock.Clock
	tickets *repository.TicketRepo
	entries *repository.EntryRepo
	publish Publisher
}

// NewIssuer wires an Issuer.  publish may be nil to disable event
// publishing.
func NewIssuer(clk clock.Clock, tickets *repository.TicketRepo, entries *repository.EntryRepo, publish Publisher) *Issuer {
	return &Issuer{clk: clk, tickets: tickets, entries: entries, publish: publish}
}

// Window reports whether issuance is currently permitted for the team
// and, while open, the mock live game and the countdown to close.
func (i *Issuer) Window(team model.Team) WindowStatus {
	now := i.clk.Now()
	minute := now.Hour()*60 + now.Minute()
	if minute < windowOpenMinute || minute > windowCloseMinute {
		return WindowStatus{}
	}
	game := liveGame(team, now)
	return WindowStatus{Open: true, Remaining: remainingString(now), Game: &game}
}

// Issue creates a ticket of the given kind for the team.  Outside the
// window it returns ErrWindowClosed and changes nothing.  Inside it
// appends the ticket to the global collection, appends a ticket-type
// calendar entry referencing it, and publishes a best-effort event.
func (i *Issuer) Issue(ctx context.Context, team model.Team, kind model.TicketType) (model.Ticket, error) {
	if !model.ValidTicketType(kind) {
		return model.Ticket{}, fmt.Errorf("invalid ticket type %q", kind)
	}
	now := i.clk.Now()
	minute := now.Hour()*60 + now.Minute()
	if minute < windowOpenMinute || minute > windowCloseMinute {
		return model.Ticket{}, ErrWindowClosed
	}
	game := liveGame(team, now)
	ticket := model.Ticket{
		ID:        uuid.NewString(),
		Type:      kind,
		Team:      team.ID(),
		Date:      now.Format("2006-01-02"),
		GameID:    game.ID,
		Opponent:  game.AwayTeam,
		Stadium:   game.Stadium,
		CreatedAt: now,
	}
	if err := i.tickets.Append(ctx, ticket); err != nil {
		return model.Ticket{}, err
	}

	entry := model.CalendarEntry{
		Date:     ticket.Date,
		Type:     model.EntryTicket,
		Emotion:  model.EmotionExcited,
		TicketID: ticket.ID,
	}
	if kind == model.TicketAttendance {
		entry.Title = "직관 티켓 발급"
		entry.Content = fmt.Sprintf("%s에서 경기 직관", game.Stadium)
	} else {
		entry.Title = "TV 시청 티켓 발급"
		entry.Content = fmt.Sprintf("%s에서 경기 TV 시청", game.Stadium)
	}
	if _, err := i.entries.Append(ctx, team, entry); err != nil {
		return model.Ticket{}, err
	}

	if i.publish != nil {
		event := queue.TicketIssuedEvent{
			TicketID: ticket.ID,
			Type:     string(kind),
			Team:     team.ID(),
			TeamName: team.Name(),
			Opponent: game.AwayTeam,
			Stadium:  game.Stadium,
			Date:     ticket.Date,
			IssuedAt: now.UTC().Format(time.RFC3339),
		}
		if err := i.publish(ctx, event); err != nil {
			log.Printf("ticketing: publish ticket.issued failed: %v", err)
		}
	}
	return ticket, nil
}

// liveGame builds the mock live fixture: the viewer's team hosting LG
// at home during the window.  When the viewer's team is LG itself,
// Doosan stands in as the visitor.
func liveGame(team model.Team, now time.Time) LiveGame {
	away := model.LG
	if team == model.LG {
		away = model.Doosan
	}
	return LiveGame{
		ID:        "live-" + now.Format("2006-01-02"),
		Date:      now.Format("2006-01-02"),
		StartTime: "09:00",
		EndTime:   "23:59",
		HomeTeam:  team.ID(),
		AwayTeam:  away.ID(),
		Stadium:   team.Stadium(),
	}
}

// remainingString renders the time left until the window closes.
func remainingString(now time.Time) string {
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	rem := end.Sub(now)
	if rem <= 0 {
		return "종료"
	}
	hours := int(rem / time.Hour)
	minutes := int(rem%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%d시간 %d분", hours, minutes)
}
