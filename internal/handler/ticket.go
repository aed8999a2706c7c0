// This file covers the live ticket window and the collectible ticket
// book: window status, issuance and the per-team collection with its
// attendance/TV counts.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/repository"
	"github.com/baseballplanet/fan-engagement/internal/ticketing"
)

// TicketHandler serves the issuance window and the ticket collection.
type TicketHandler struct {
	Issuer  *ticketing.Issuer
	Watcher *ticketing.Watcher
	Tickets *repository.TicketRepo
}

// GetWindow returns the current issuance window snapshot for a team.
// The snapshot comes from the minute watcher when one is running, so
// the countdown string changes at most once a minute.
func (h *TicketHandler) GetWindow(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	var status ticketing.WindowStatus
	if h.Watcher != nil {
		status = h.Watcher.Status(team)
	} else {
		status = h.Issuer.Window(team)
	}
	return c.JSON(http.StatusOK, status)
}

// Issue creates a ticket of the requested type for the team.  Outside
// the daily window the request is rejected with 409 and nothing is
// created.
func (h *TicketHandler) Issue(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	var req struct {
		Type string `json:"type"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	kind := model.TicketType(req.Type)
	if !model.ValidTicketType(kind) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown ticket type"})
	}
	ticket, err := h.Issuer.Issue(c.Request().Context(), team, kind)
	if err != nil {
		if err == ticketing.ErrWindowClosed {
			return c.JSON(http.StatusConflict, echo.Map{"error": "issuance window closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ticket": ticket})
}

// collectionStats summarizes a team's ticket book.
type collectionStats struct {
	Total      int `json:"total"`
	Attendance int `json:"attendance"`
	TV         int `json:"tv"`
}

// GetCollection returns the team's tickets in issuance order along
// with the attendance/TV counts shown on the collection screen.
func (h *TicketHandler) GetCollection(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	tickets, err := h.Tickets.ListByTeam(c.Request().Context(), team)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	stats := collectionStats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Type {
		case model.TicketAttendance:
			stats.Attendance++
		case model.TicketTV:
			stats.TV++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": tickets, "stats": stats})
}
