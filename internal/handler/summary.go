package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/summary"
)

// SummaryHandler serves the home-screen recap and preview cards.
type SummaryHandler struct{}

// GetLatest returns the recap of the most recent game.
func (h *SummaryHandler) GetLatest(c echo.Context) error {
	return c.JSON(http.StatusOK, summary.Latest())
}

// GetNextGame returns the next-game preview with pitchers, recent form
// and the fan prediction split.
func (h *SummaryHandler) GetNextGame(c echo.Context) error {
	return c.JSON(http.StatusOK, summary.Upcoming())
}
