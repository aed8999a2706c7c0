// Package schedule produces the fixed mock game schedule and the seeded
// ticket fixtures used to populate a fan calendar before any real data
// exists.  Generation is pure: the same team always yields the same
// schedule.
package schedule

import (
	"time"

	"github.com/baseballplanet/fan-engagement/internal/model"
)

// Result is the outcome recorded for a schedule slot.
type Result string

const (
	Win       Result = "win"
	Lose      Result = "lose"
	Scheduled Result = "scheduled"
)

// Game is one slot of a team's mock schedule.  Score is nil for
// scheduled games.  Stadium is the home team's park for home slots and
// the opponent's park for away slots.
type Game struct {
	Date     string       `json:"date"`
	Opponent string       `json:"opponent"`
	Result   Result       `json:"result"`
	Score    *model.Score `json:"score,omitempty"`
	GameTime string       `json:"gameTime"`
	Stadium  string       `json:"stadium"`
}

// slot fixes everything about a schedule position except the opponent,
// which depends on the requesting team.  opponentIdx indexes into the
// nine remaining teams after the requesting team is removed; the tenth
// slot reuses index 0.
type slot struct {
	date        string
	result      Result
	score       *model.Score
	gameTime    string
	home        bool
	opponentIdx int
}

var slots = []slot{
	{"2025-07-03", Win, &model.Score{Home: 7, Away: 4}, "18:30", true, 0},
	{"2025-07-06", Lose, &model.Score{Home: 3, Away: 5}, "14:00", false, 1},
	{"2025-07-10", Win, &model.Score{Home: 6, Away: 2}, "18:30", true, 2},
	{"2025-07-13", Win, &model.Score{Home: 8, Away: 3}, "14:00", false, 3},
	{"2025-07-17", Lose, &model.Score{Home: 2, Away: 4}, "18:30", true, 4},
	{"2025-07-20", Win, &model.Score{Home: 5, Away: 1}, "14:00", false, 5},
	{"2025-07-24", Scheduled, nil, "18:30", true, 6},
	{"2025-07-27", Scheduled, nil, "14:00", false, 7},
	{"2025-07-30", Scheduled, nil, "18:30", true, 8},
	{"2025-07-31", Scheduled, nil, "18:30", false, 0},
}

// Generate returns the fixed ten-game schedule for a team.  Opponents
// are the nine other teams assigned by slot position, with the first
// opponent reused for the final slot.
func Generate(team model.Team) []Game {
	var opponents []model.Team
	for _, t := range model.AllTeams() {
		if t != team {
			opponents = append(opponents, t)
		}
	}
	games := make([]Game, 0, len(slots))
	for _, s := range slots {
		opp := opponents[s.opponentIdx]
		stadium := team.Stadium()
		if !s.home {
			stadium = opp.Stadium()
		}
		var score *model.Score
		if s.score != nil {
			sc := *s.score
			score = &sc
		}
		games = append(games, Game{
			Date:     s.date,
			Opponent: opp.ID(),
			Result:   s.result,
			Score:    score,
			GameTime: s.gameTime,
			Stadium:  stadium,
		})
	}
	return games
}

// Seed ticket fixtures: three pre-issued tickets that decorate past
// game dates the first time a calendar is reconciled.

// SeedTickets returns the ticket records matching SeedTicketEntries.
// The team and creation time vary with the claiming team and clock; the
// IDs are stable so seeding is idempotent.
func SeedTickets(team model.Team, now time.Time) []model.Ticket {
	return []model.Ticket{
		{ID: "12345", Type: model.TicketAttendance, Team: team.ID(), Date: "2025-07-03", Stadium: "잠실야구장", CreatedAt: now},
		{ID: "12346", Type: model.TicketTV, Team: team.ID(), Date: "2025-07-10", Stadium: team.Stadium(), CreatedAt: now},
		{ID: "12347", Type: model.TicketAttendance, Team: team.ID(), Date: "2025-07-20", Stadium: "광주-KIA 챔피언스 필드", CreatedAt: now},
	}
}

// SeedTicketEntries returns the calendar entries referencing the seed
// tickets.  Reconciliation filters these against dates that already
// hold a ticket entry.
func SeedTicketEntries() []model.CalendarEntry {
	return []model.CalendarEntry{
		{
			ID:       "seed-ticket-12345",
			Date:     "2025-07-03",
			Type:     model.EntryTicket,
			Title:    "직관 티켓 발급",
			Content:  "잠실야구장에서 경기 직관",
			Emotion:  model.EmotionExcited,
			TicketID: "12345",
		},
		{
			ID:       "seed-ticket-12346",
			Date:     "2025-07-10",
			Type:     model.EntryTicket,
			Title:    "TV 시청 티켓 발급",
			Content:  "집에서 TV로 경기 시청",
			Emotion:  model.EmotionHappy,
			TicketID: "12346",
		},
		{
			ID:       "seed-ticket-12347",
			Date:     "2025-07-20",
			Type:     model.EntryTicket,
			Title:    "직관 티켓 발급",
			Content:  "광주-KIA 챔피언스 필드에서 경기 직관",
			Emotion:  model.EmotionExcited,
			TicketID: "12347",
		},
	}
}
