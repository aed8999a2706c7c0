// This file covers the baseball glossary: search, category filtering
// and the beginner-mode restriction.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/glossary"
	"github.com/baseballplanet/fan-engagement/internal/repository"
)

// GlossaryHandler serves the term dictionary.  The beginner-mode
// preference narrows results to beginner terms unless the request
// overrides it.
type GlossaryHandler struct {
	Prefs *repository.PrefsRepo
}

// ListTerms returns glossary terms.  Query parameters:
//
//	q        – case-insensitive substring match on term or definition
//	category – exact category filter
//	beginner – "true"/"false" to override the stored beginner-mode flag
func (h *GlossaryHandler) ListTerms(c echo.Context) error {
	beginner := false
	if v := c.QueryParam("beginner"); v != "" {
		beginner = v == "true"
	} else {
		on, err := h.Prefs.BeginnerMode(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
		}
		beginner = on
	}
	terms := glossary.Filter(c.QueryParam("q"), c.QueryParam("category"), beginner)
	return c.JSON(http.StatusOK, echo.Map{"items": terms})
}

// ListCategories returns the category names in dictionary order.
func (h *GlossaryHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": glossary.Categories()})
}
