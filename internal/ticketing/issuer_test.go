package ticketing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseballplanet/fan-engagement/internal/kv"
	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/queue"
	"github.com/baseballplanet/fan-engagement/internal/repository"
)

type fakeClock struct{ at time.Time }

func (f *fakeClock) Now() time.Time { return f.at }

func at(hour, minute int) time.Time {
	return time.Date(2025, 7, 18, hour, minute, 0, 0, time.UTC)
}

func newTestIssuer(clk *fakeClock, publish Publisher) (*Issuer, *repository.TicketRepo, *repository.EntryRepo) {
	store := kv.NewMemory()
	tickets := repository.NewTicketRepo(store)
	entries := repository.NewEntryRepo(store)
	return NewIssuer(clk, tickets, entries, publish), tickets, entries
}

func TestWindow(t *testing.T) {
	clk := &fakeClock{}
	issuer, _, _ := newTestIssuer(clk, nil)

	t.Run("closed before nine", func(t *testing.T) {
		clk.at = at(8, 59)
		status := issuer.Window(model.LG)
		assert.False(t, status.Open)
		assert.Empty(t, status.Remaining)
		assert.Nil(t, status.Game)
	})

	t.Run("open at nine", func(t *testing.T) {
		clk.at = at(9, 0)
		status := issuer.Window(model.LG)
		require.True(t, status.Open)
		assert.Equal(t, "14시간 59분", status.Remaining)
		require.NotNil(t, status.Game)
		assert.Equal(t, "lg", status.Game.HomeTeam)
	})

	t.Run("open at the last minute", func(t *testing.T) {
		clk.at = at(23, 59)
		assert.True(t, issuer.Window(model.LG).Open)
	})

	t.Run("countdown counts minutes to close", func(t *testing.T) {
		clk.at = at(21, 44)
		assert.Equal(t, "2시간 15분", issuer.Window(model.LG).Remaining)
	})
}

func TestLiveGameOpponent(t *testing.T) {
	clk := &fakeClock{at: at(12, 0)}
	issuer, _, _ := newTestIssuer(clk, nil)

	status := issuer.Window(model.Doosan)
	require.NotNil(t, status.Game)
	assert.Equal(t, "lg", status.Game.AwayTeam)
	assert.Equal(t, model.Doosan.Stadium(), status.Game.Stadium)

	// LG cannot host itself; Doosan stands in as the visitor.
	status = issuer.Window(model.LG)
	require.NotNil(t, status.Game)
	assert.Equal(t, "doosan", status.Game.AwayTeam)
}

func TestIssueOutsideWindow(t *testing.T) {
	clk := &fakeClock{at: at(7, 30)}
	issuer, tickets, entries := newTestIssuer(clk, nil)
	ctx := context.Background()

	_, err := issuer.Issue(ctx, model.LG, model.TicketAttendance)
	assert.ErrorIs(t, err, ErrWindowClosed)

	all, err := tickets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "nothing may be created on rejection")
	cal, err := entries.Load(ctx, model.LG)
	require.NoError(t, err)
	assert.Empty(t, cal)
}

func TestIssueInsideWindow(t *testing.T) {
	clk := &fakeClock{at: at(19, 30)}
	var published []queue.TicketIssuedEvent
	issuer, tickets, entries := newTestIssuer(clk, func(_ context.Context, ev queue.TicketIssuedEvent) error {
		published = append(published, ev)
		return nil
	})
	ctx := context.Background()

	ticket, err := issuer.Issue(ctx, model.LG, model.TicketTV)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-18", ticket.Date)
	assert.Equal(t, "lg", ticket.Team)
	assert.Equal(t, model.TicketTV, ticket.Type)

	t.Run("ticket reaches the collection", func(t *testing.T) {
		got, err := tickets.GetByID(ctx, ticket.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("companion entry references the ticket", func(t *testing.T) {
		cal, err := entries.Load(ctx, model.LG)
		require.NoError(t, err)
		require.Len(t, cal, 1)
		assert.Equal(t, model.EntryTicket, cal[0].Type)
		assert.Equal(t, ticket.ID, cal[0].TicketID)
		assert.Equal(t, "TV 시청 티켓 발급", cal[0].Title)
	})

	t.Run("event published", func(t *testing.T) {
		require.Len(t, published, 1)
		assert.Equal(t, ticket.ID, published[0].TicketID)
		assert.Equal(t, "tv", published[0].Type)
	})
}

func TestIssuePublisherFailureIsIgnored(t *testing.T) {
	clk := &fakeClock{at: at(10, 0)}
	issuer, _, _ := newTestIssuer(clk, func(_ context.Context, _ queue.TicketIssuedEvent) error {
		return assert.AnError
	})
	_, err := issuer.Issue(context.Background(), model.LG, model.TicketAttendance)
	assert.NoError(t, err, "broker outages never block issuance")
}

func TestIssueRejectsUnknownType(t *testing.T) {
	clk := &fakeClock{at: at(10, 0)}
	issuer, _, _ := newTestIssuer(clk, nil)
	_, err := issuer.Issue(context.Background(), model.LG, model.TicketType("paper"))
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	clk := &fakeClock{at: at(10, 0)}
	issuer, _, _ := newTestIssuer(clk, nil)
	w := NewWatcher(issuer, time.Hour)
	w.Start()
	defer w.Stop()

	status := w.Status(model.LG)
	assert.True(t, status.Open, "initial snapshot computed on Start")
}
