// This file covers the per-team fan calendar: the month grid, the day
// detail view and note creation.  Loading a month reconciles the
// persisted entries with the generated game schedule and the seed
// ticket entries, so the calendar fills itself in on first view.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/calendar"
	"github.com/baseballplanet/fan-engagement/internal/clock"
	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/repository"
	"github.com/baseballplanet/fan-engagement/internal/schedule"
)

// The schedule fixture covers this month, so the calendar opens there.
const (
	defaultYear  = 2025
	defaultMonth = time.July
)

// CalendarHandler serves the fan calendar for a team namespace.
type CalendarHandler struct {
	Entries *repository.EntryRepo
	Tickets *repository.TicketRepo
	Clock   clock.Clock
}

// GetMonth returns the month grid plus the most recent entries.  Query
// parameters year and month select the month; they default to the
// season fixture month.  Reconciliation runs on every load and is
// idempotent, so refreshing the calendar never duplicates entries.
func (h *CalendarHandler) GetMonth(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	year := defaultYear
	month := defaultMonth
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
		}
		year = n
	}
	if v := c.QueryParam("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
		}
		month = time.Month(n)
	}

	ctx := c.Request().Context()
	if err := h.Tickets.EnsureSeeded(ctx, schedule.SeedTickets(team, h.Clock.Now())); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	persisted, err := h.Entries.Load(ctx, team)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	entries, err := h.Entries.Reconcile(ctx, team, persisted, schedule.Generate(team), schedule.SeedTicketEntries())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}

	view := calendar.BuildMonth(year, month, entries)
	return c.JSON(http.StatusOK, echo.Map{
		"calendar": view,
		"recent":   calendar.Recent(entries, 3),
	})
}

// GetDay returns every entry recorded on one date, in insertion order,
// with the tickets referenced by ticket-type entries resolved inline.
func (h *CalendarHandler) GetDay(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	ctx := c.Request().Context()
	entries, err := h.Entries.Load(ctx, team)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	day := repository.EntriesForDate(entries, date)

	tickets := map[string]*model.Ticket{}
	for _, e := range day {
		if e.TicketID == "" {
			continue
		}
		t, err := h.Tickets.GetByID(ctx, e.TicketID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
		}
		if t != nil {
			tickets[e.TicketID] = t
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": day, "tickets": tickets})
}

// noteRequest is the body of a note creation call.
type noteRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Emotion string `json:"emotion"`
}

// CreateNote appends a fan note to the team's calendar.  Title and a
// known emotion are required; several notes may share a day.
func (h *CalendarHandler) CreateNote(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	emotion := model.Emotion(req.Emotion)
	if !model.ValidEmotion(emotion) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown emotion"})
	}
	entry := model.CalendarEntry{
		Date:    req.Date,
		Type:    model.EntryNote,
		Title:   req.Title,
		Content: req.Content,
		Emotion: emotion,
	}
	created, err := h.Entries.Append(c.Request().Context(), team, entry)
	if err != nil {
		if err == repository.ErrEmptyContent {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"entry": created})
}
