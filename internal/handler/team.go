// Package handler exposes HTTP handlers for the fan engagement API.
// This file covers the team directory and the viewer's preferences:
// the selected team, beginner mode and the per-team favorite player.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/repository"
)

// TeamHandler aggregates the repositories needed for the team directory
// and preference endpoints.
type TeamHandler struct {
	Prefs *repository.PrefsRepo
}

// TeamView is a team in API responses: identity, branding and the
// collectible ticket design.
type TeamView struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Color   string             `json:"color"`
	Logo    string             `json:"logo"`
	Stadium string             `json:"stadium"`
	Design  model.TicketDesign `json:"ticketDesign"`
}

func teamView(t model.Team) TeamView {
	return TeamView{
		ID:      t.ID(),
		Name:    t.Name(),
		Color:   t.Color(),
		Logo:    t.Logo(),
		Stadium: t.Stadium(),
		Design:  t.Design(),
	}
}

// teamParam resolves the :team path parameter.  A nil pointer return
// means the response has already been written.
func teamParam(c echo.Context) (model.Team, bool) {
	team, err := model.ParseTeam(c.Param("team"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "unknown team"})
		return 0, false
	}
	return team, true
}

// ListTeams returns the fixed league directory of all ten teams.
func (h *TeamHandler) ListTeams(c echo.Context) error {
	out := make([]TeamView, 0, len(model.AllTeams()))
	for _, t := range model.AllTeams() {
		out = append(out, teamView(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetSelectedTeam returns the viewer's current team selection, or 404
// when no valid selection has been stored yet.
func (h *TeamHandler) GetSelectedTeam(c echo.Context) error {
	ctx := c.Request().Context()
	team, ok, err := h.Prefs.SelectedTeam(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no team selected"})
	}
	return c.JSON(http.StatusOK, echo.Map{"team": teamView(team)})
}

// SetSelectedTeam stores the viewer's team selection.  Unknown team IDs
// are rejected; calendars of previously selected teams are untouched.
func (h *TeamHandler) SetSelectedTeam(c echo.Context) error {
	var req struct {
		Team string `json:"team"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	team, err := model.ParseTeam(req.Team)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown team"})
	}
	if err := h.Prefs.SetSelectedTeam(c.Request().Context(), team); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"team": teamView(team)})
}

// GetBeginnerMode returns the beginner-mode flag (false by default).
func (h *TeamHandler) GetBeginnerMode(c echo.Context) error {
	on, err := h.Prefs.BeginnerMode(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"enabled": on})
}

// SetBeginnerMode stores the beginner-mode flag.
func (h *TeamHandler) SetBeginnerMode(c echo.Context) error {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Prefs.SetBeginnerMode(c.Request().Context(), req.Enabled); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"enabled": req.Enabled})
}

// ListPlayers returns the roster for one team.
func (h *TeamHandler) ListPlayers(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, echo.Map{"items": model.PlayersByTeam(team)})
}

// GetFavoritePlayer returns the fan's favorite player for one team.
// The player is null when none has been chosen.
func (h *TeamHandler) GetFavoritePlayer(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	p, err := h.Prefs.FavoritePlayer(c.Request().Context(), team)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"player": p})
}

// SetFavoritePlayer stores the fan's pick.  The player must belong to
// the team's roster.
func (h *TeamHandler) SetFavoritePlayer(c echo.Context) error {
	team, ok := teamParam(c)
	if !ok {
		return nil
	}
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	for _, p := range model.PlayersByTeam(team) {
		if p.ID == req.PlayerID {
			if err := h.Prefs.SetFavoritePlayer(c.Request().Context(), team, p); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
			}
			return c.JSON(http.StatusOK, echo.Map{"player": p})
		}
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "player not on roster"})
}
