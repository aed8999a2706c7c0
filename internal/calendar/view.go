// Package calendar builds the month view served to the fan calendar
// screen.  It is a pure read-side grouping of calendar entries by day:
// nothing here generates entries or touches persistence, and moving
// between months only changes which entries are grouped.
package calendar

import (
	"fmt"
	"time"

	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/repository"
)

// maxVisible caps how many non-game entries a day cell lists before
// collapsing the rest into an overflow count.
const maxVisible = 3

// DayCell is one day of the month grid.  When a game-type entry exists
// for the day it is surfaced in Game and rendered preferentially; the
// first such entry wins if several share the date.  Otherwise Visible
// holds up to three entries and Overflow counts the rest.
type DayCell struct {
	Day       int                   `json:"day"`
	Date      string                `json:"date"`
	Game      *model.CalendarEntry  `json:"game,omitempty"`
	Visible   []model.CalendarEntry `json:"visible,omitempty"`
	Overflow  int                   `json:"overflow,omitempty"`
	HasTicket bool                  `json:"hasTicket"`
	Total     int                   `json:"total"`
}

// MonthView is the rendered month: weekday offset of the first day
// (0 = Sunday) followed by one cell per day.
type MonthView struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	LeadingBlanks int       `json:"leadingBlanks"`
	Days          []DayCell `json:"days"`
}

// BuildMonth groups entries into the grid for the given month.
func BuildMonth(year int, month time.Month, entries []model.CalendarEntry) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view := MonthView{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]DayCell, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		view.Days = append(view.Days, buildCell(day, date, repository.EntriesForDate(entries, date)))
	}
	return view
}

func buildCell(day int, date string, dayEntries []model.CalendarEntry) DayCell {
	cell := DayCell{Day: day, Date: date, Total: len(dayEntries)}
	for i := range dayEntries {
		if dayEntries[i].Type == model.EntryTicket {
			cell.HasTicket = true
			break
		}
	}
	for i := range dayEntries {
		if dayEntries[i].Type.IsGame() {
			game := dayEntries[i]
			cell.Game = &game
			return cell
		}
	}
	if len(dayEntries) > maxVisible {
		cell.Visible = dayEntries[:maxVisible]
		cell.Overflow = len(dayEntries) - maxVisible
	} else {
		cell.Visible = dayEntries
	}
	return cell
}

// Recent returns up to n entries from the tail of the list, newest
// first, for the "recent records" panel.
func Recent(entries []model.CalendarEntry, n int) []model.CalendarEntry {
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]model.CalendarEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}
	return out
}
