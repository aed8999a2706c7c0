package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/baseballplanet/fan-engagement/internal/kv"
	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/schedule"
)

// EntryRepo owns the calendar entry collection for each team
// namespace.  Entries are append-only: reconciliation and note
// creation extend the persisted list and never rewrite prior entries.
// All persistence is a whole-list overwrite of the "calendar:<teamId>"
// blob, so a load/merge/save sequence is the unit of work.
type EntryRepo struct {
	store kv.Store
}

// NewEntryRepo returns an EntryRepo persisting through the given store.
func NewEntryRepo(store kv.Store) *EntryRepo {
	return &EntryRepo{store: store}
}

func calendarKey(team model.Team) string { return "calendar:" + team.ID() }

// Load reads the persisted entry list for a team.  A missing or
// unparseable blob degrades to an empty list; storage transport errors
// are still reported.
func (r *EntryRepo) Load(ctx context.Context, team model.Team) ([]model.CalendarEntry, error) {
	raw, err := r.store.Get(ctx, calendarKey(team))
	if err != nil {
		if err == kv.ErrNotFound {
			return []model.CalendarEntry{}, nil
		}
		return nil, err
	}
	var entries []model.CalendarEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Corrupt blob: start over rather than fail the calendar.
		return []model.CalendarEntry{}, nil
	}
	return entries, nil
}

// save overwrites the team's entry blob with the given list.
func (r *EntryRepo) save(ctx context.Context, team model.Team, entries []model.CalendarEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, calendarKey(team), raw)
}

// Reconcile merges the persisted entries with freshly generated game
// and ticket entries and returns the authoritative list.
//
// Game entries are deduplicated against the dates of ALL persisted
// entries; ticket entries only against persisted entries of type
// "ticket".  The merged order is persisted ++ newGames ++ newTickets,
// with persisted entries first and unchanged.  When either derived
// list is non-empty the result is written back, so running Reconcile
// again over its own output generates nothing new.
func (r *EntryRepo) Reconcile(ctx context.Context, team model.Team, persisted []model.CalendarEntry, games []schedule.Game, ticketEntries []model.CalendarEntry) ([]model.CalendarEntry, error) {
	existingDates := make(map[string]bool, len(persisted))
	existingTicketDates := make(map[string]bool)
	for _, e := range persisted {
		existingDates[e.Date] = true
		if e.Type == model.EntryTicket {
			existingTicketDates[e.Date] = true
		}
	}

	var newGames []model.CalendarEntry
	for _, g := range games {
		if existingDates[g.Date] {
			continue
		}
		newGames = append(newGames, gameEntry(g))
	}

	var newTickets []model.CalendarEntry
	for _, t := range ticketEntries {
		if existingTicketDates[t.Date] {
			continue
		}
		newTickets = append(newTickets, t)
	}

	merged := make([]model.CalendarEntry, 0, len(persisted)+len(newGames)+len(newTickets))
	merged = append(merged, persisted...)
	merged = append(merged, newGames...)
	merged = append(merged, newTickets...)

	if len(newGames) > 0 || len(newTickets) > 0 {
		if err := r.save(ctx, team, merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// gameEntry converts a schedule slot into a calendar entry with the
// derived title, content and emotion.
func gameEntry(g schedule.Game) model.CalendarEntry {
	opp, _ := model.ParseTeam(g.Opponent)
	entry := model.CalendarEntry{
		ID:       uuid.NewString(),
		Date:     g.Date,
		Opponent: g.Opponent,
		GameTime: g.GameTime,
		Stadium:  g.Stadium,
	}
	switch g.Result {
	case schedule.Win:
		entry.Type = model.EntryWin
		entry.Title = "승리 vs " + opp.Logo()
		entry.Emotion = model.EmotionHappy
	case schedule.Lose:
		entry.Type = model.EntryLose
		entry.Title = "패배 vs " + opp.Logo()
		entry.Emotion = model.EmotionSad
	default:
		entry.Type = model.EntryScheduled
		entry.Title = "예정 vs " + opp.Logo()
		entry.Emotion = model.EmotionExcited
	}
	if g.Score != nil {
		sc := *g.Score
		entry.Score = &sc
		entry.Content = fmt.Sprintf("%d : %d", sc.Home, sc.Away)
	} else {
		entry.Content = g.GameTime + " " + g.Stadium
	}
	return entry
}

// Append adds a single entry to the team's list and persists the
// result.  It never removes or alters existing entries and performs no
// date deduplication: several notes may share a day.  Note entries
// require a title and a known emotion.
func (r *EntryRepo) Append(ctx context.Context, team model.Team, entry model.CalendarEntry) (model.CalendarEntry, error) {
	if entry.Type == model.EntryNote && entry.Title == "" {
		return model.CalendarEntry{}, ErrEmptyContent
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entries, err := r.Load(ctx, team)
	if err != nil {
		return model.CalendarEntry{}, err
	}
	entries = append(entries, entry)
	if err := r.save(ctx, team, entries); err != nil {
		return model.CalendarEntry{}, err
	}
	return entry, nil
}

// EntriesForDate returns the subset of entries whose date equals day,
// preserving their relative order.  It backs both calendar cell
// rendering and the day detail view.
func EntriesForDate(entries []model.CalendarEntry, day string) []model.CalendarEntry {
	var out []model.CalendarEntry
	for _, e := range entries {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out
}
