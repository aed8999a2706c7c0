package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseballplanet/fan-engagement/internal/model"
)

func TestGenerate(t *testing.T) {
	games := Generate(model.LG)

	t.Run("ten games in July", func(t *testing.T) {
		require.Len(t, games, 10)
		for _, g := range games {
			assert.Contains(t, g.Date, "2025-07-")
		}
	})

	t.Run("team never plays itself", func(t *testing.T) {
		for _, g := range games {
			assert.NotEqual(t, model.LG.ID(), g.Opponent)
		}
	})

	t.Run("first six games have results and scores", func(t *testing.T) {
		for _, g := range games[:6] {
			assert.NotEqual(t, Scheduled, g.Result)
			require.NotNil(t, g.Score)
		}
	})

	t.Run("last four games are scheduled without score", func(t *testing.T) {
		for _, g := range games[6:] {
			assert.Equal(t, Scheduled, g.Result)
			assert.Nil(t, g.Score)
		}
	})

	t.Run("final slot reuses the first opponent", func(t *testing.T) {
		assert.Equal(t, games[0].Opponent, games[9].Opponent)
	})

	t.Run("home games play in own park", func(t *testing.T) {
		assert.Equal(t, model.LG.Stadium(), games[0].Stadium)
		opp, err := model.ParseTeam(games[1].Opponent)
		require.NoError(t, err)
		assert.Equal(t, opp.Stadium(), games[1].Stadium)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, games, Generate(model.LG))
	})
}

func TestSeedFixturesAgree(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tickets := SeedTickets(model.Doosan, now)
	entries := SeedTicketEntries()
	require.Len(t, tickets, 3)
	require.Len(t, entries, 3)

	byID := map[string]model.Ticket{}
	for _, tk := range tickets {
		assert.Equal(t, model.Doosan.ID(), tk.Team)
		byID[tk.ID] = tk
	}
	for _, e := range entries {
		assert.Equal(t, model.EntryTicket, e.Type)
		tk, ok := byID[e.TicketID]
		require.True(t, ok, "entry %s references missing ticket %s", e.ID, e.TicketID)
		assert.Equal(t, tk.Date, e.Date)
	}
}
