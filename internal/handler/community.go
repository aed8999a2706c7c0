// This file covers the fan community feed: posts, likes, comments,
// trending topics and the headline stats.  Posts are authored as the
// viewer ("나") with the selected team's logo as avatar.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/repository"
)

// CommunityHandler serves the in-memory fan feed.
type CommunityHandler struct {
	Feed  *repository.CommunityRepo
	Prefs *repository.PrefsRepo
}

// viewerAvatar returns the selected team's logo, or a neutral baseball
// when no team is selected yet.
func (h *CommunityHandler) viewerAvatar(c echo.Context) string {
	team, ok, err := h.Prefs.SelectedTeam(c.Request().Context())
	if err != nil || !ok {
		return "⚾"
	}
	return team.Logo()
}

// ListPosts returns the feed newest-first.  The type query parameter
// filters by post type; unknown values return an empty list.
func (h *CommunityHandler) ListPosts(c echo.Context) error {
	filter := model.PostType(c.QueryParam("type"))
	return c.JSON(http.StatusOK, echo.Map{"items": h.Feed.Posts(filter)})
}

// CreatePost adds a new post authored by the viewer.
func (h *CommunityHandler) CreatePost(c echo.Context) error {
	var req struct {
		Content string `json:"content"`
		Type    string `json:"type"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	post, err := h.Feed.CreatePost("나", h.viewerAvatar(c), req.Content, model.PostType(req.Type))
	if err != nil {
		if err == repository.ErrEmptyContent {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "content required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"post": post})
}

// ToggleLike flips the viewer's like on a post.
func (h *CommunityHandler) ToggleLike(c echo.Context) error {
	post, err := h.Feed.ToggleLike(c.Param("id"))
	if err != nil {
		if err == repository.ErrPostNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"post": post})
}

// ListComments returns a post's comments in insertion order.
func (h *CommunityHandler) ListComments(c echo.Context) error {
	comments := h.Feed.Comments(c.Param("id"))
	if comments == nil {
		comments = []model.Comment{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": comments})
}

// AddComment appends a viewer comment to a post.
func (h *CommunityHandler) AddComment(c echo.Context) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	comment, err := h.Feed.AddComment(c.Param("id"), "나", h.viewerAvatar(c), req.Content)
	if err != nil {
		switch err {
		case repository.ErrEmptyContent:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "content required"})
		case repository.ErrPostNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"comment": comment})
}

// HotTopics returns the trending hashtags.
func (h *CommunityHandler) HotTopics(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Feed.HotTopics()})
}

// Stats returns the headline community numbers.
func (h *CommunityHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Feed.Stats())
}
