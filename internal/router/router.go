package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/handler"
)

// RegisterRoutes registers routes that do not belong to a feature
// group.  Currently it exposes only a health check, used by load
// balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterTeams registers the team directory and preference endpoints
// under /v1.  Per-team resources take the team ID as a path parameter;
// preferences are single per-device values without a team prefix.
func RegisterTeams(e *echo.Echo, h *handler.TeamHandler) {
	g := e.Group("/v1")
	g.GET("/teams", h.ListTeams)
	g.GET("/teams/selected", h.GetSelectedTeam)
	g.PUT("/teams/selected", h.SetSelectedTeam)
	g.GET("/prefs/beginner-mode", h.GetBeginnerMode)
	g.PUT("/prefs/beginner-mode", h.SetBeginnerMode)
	g.GET("/teams/:team/players", h.ListPlayers)
	g.GET("/teams/:team/favorite-player", h.GetFavoritePlayer)
	g.PUT("/teams/:team/favorite-player", h.SetFavoritePlayer)
}

// RegisterCalendar registers the per-team fan calendar endpoints.
// Month loads reconcile the schedule into the stored entries, so a GET
// may write.
func RegisterCalendar(e *echo.Echo, h *handler.CalendarHandler) {
	g := e.Group("/v1/teams/:team/calendar")
	g.GET("", h.GetMonth)
	g.GET("/:date", h.GetDay)
	g.POST("/notes", h.CreateNote)
}

// RegisterTickets registers the live ticket window and the collectible
// ticket book endpoints.
func RegisterTickets(e *echo.Echo, h *handler.TicketHandler) {
	g := e.Group("/v1/teams/:team/tickets")
	g.GET("/window", h.GetWindow)
	g.POST("", h.Issue)
	g.GET("", h.GetCollection)
}

// RegisterGlossary registers the baseball dictionary endpoints.
func RegisterGlossary(e *echo.Echo, h *handler.GlossaryHandler) {
	g := e.Group("/v1/glossary")
	g.GET("", h.ListTerms)
	g.GET("/categories", h.ListCategories)
}

// RegisterCommunity registers the fan feed endpoints.
func RegisterCommunity(e *echo.Echo, h *handler.CommunityHandler) {
	g := e.Group("/v1/community")
	g.GET("/posts", h.ListPosts)
	g.POST("/posts", h.CreatePost)
	g.POST("/posts/:id/like", h.ToggleLike)
	g.GET("/posts/:id/comments", h.ListComments)
	g.POST("/posts/:id/comments", h.AddComment)
	g.GET("/topics", h.HotTopics)
	g.GET("/stats", h.Stats)
}

// RegisterSummary registers the home-screen recap and preview cards.
func RegisterSummary(e *echo.Echo, h *handler.SummaryHandler) {
	g := e.Group("/v1/games")
	g.GET("/latest", h.GetLatest)
	g.GET("/next", h.GetNextGame)
}
