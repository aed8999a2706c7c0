package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseballplanet/fan-engagement/internal/kv"
	"github.com/baseballplanet/fan-engagement/internal/model"
	"github.com/baseballplanet/fan-engagement/internal/repository"
	"github.com/baseballplanet/fan-engagement/internal/ticketing"
)

type fakeClock struct{ at time.Time }

func (f *fakeClock) Now() time.Time { return f.at }

// testEnv wires every handler against one in-memory store.
type testEnv struct {
	e        *echo.Echo
	clk      *fakeClock
	team     *TeamHandler
	calendar *CalendarHandler
	ticket   *TicketHandler
	glossary *GlossaryHandler
	feed     *CommunityHandler
}

func newTestEnv() *testEnv {
	store := kv.NewMemory()
	clk := &fakeClock{at: time.Date(2025, 7, 18, 19, 30, 0, 0, time.UTC)}
	entries := repository.NewEntryRepo(store)
	tickets := repository.NewTicketRepo(store)
	prefs := repository.NewPrefsRepo(store)
	issuer := ticketing.NewIssuer(clk, tickets, entries, nil)
	return &testEnv{
		e:        echo.New(),
		clk:      clk,
		team:     &TeamHandler{Prefs: prefs},
		calendar: &CalendarHandler{Entries: entries, Tickets: tickets, Clock: clk},
		ticket:   &TicketHandler{Issuer: issuer, Tickets: tickets},
		glossary: &GlossaryHandler{Prefs: prefs},
		feed:     &CommunityHandler{Feed: repository.NewCommunityRepo(clk), Prefs: prefs},
	}
}

// call runs a handler with optional JSON body and path parameters, and
// decodes the JSON response into out when non-nil.
func (env *testEnv) call(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	var names, values []string
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, h(c))
	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestListTeams(t *testing.T) {
	env := newTestEnv()
	var resp struct {
		Items []TeamView `json:"items"`
	}
	rec := env.call(t, env.team.ListTeams, http.MethodGet, "/v1/teams", "", nil, &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Items, 10)
	assert.Equal(t, "doosan", resp.Items[0].ID)
	assert.Equal(t, "Bears", resp.Items[0].Design.Nickname)
}

func TestSelectedTeamFlow(t *testing.T) {
	env := newTestEnv()

	rec := env.call(t, env.team.GetSelectedTeam, http.MethodGet, "/v1/teams/selected", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.call(t, env.team.SetSelectedTeam, http.MethodPut, "/v1/teams/selected", `{"team":"hanwha"}`, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Team TeamView `json:"team"`
	}
	rec = env.call(t, env.team.GetSelectedTeam, http.MethodGet, "/v1/teams/selected", "", nil, &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hanwha", resp.Team.ID)

	rec = env.call(t, env.team.SetSelectedTeam, http.MethodPut, "/v1/teams/selected", `{"team":"yankees"}`, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoritePlayerFlow(t *testing.T) {
	env := newTestEnv()
	params := map[string]string{"team": "kt"}

	roster := model.PlayersByTeam(model.KT)
	require.NotEmpty(t, roster)

	rec := env.call(t, env.team.SetFavoritePlayer, http.MethodPut, "/v1/teams/kt/favorite-player",
		`{"playerId":"`+roster[0].ID+`"}`, params, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Player *model.Player `json:"player"`
	}
	rec = env.call(t, env.team.GetFavoritePlayer, http.MethodGet, "/v1/teams/kt/favorite-player", "", params, &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Player)
	assert.Equal(t, roster[0].ID, resp.Player.ID)

	rec = env.call(t, env.team.SetFavoritePlayer, http.MethodPut, "/v1/teams/kt/favorite-player",
		`{"playerId":"doosan_1"}`, params, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "player from another roster")
}

func TestGetMonth(t *testing.T) {
	env := newTestEnv()
	params := map[string]string{"team": "lg"}

	var resp struct {
		Calendar struct {
			Year          int `json:"year"`
			Month         int `json:"month"`
			LeadingBlanks int `json:"leadingBlanks"`
			Days          []struct {
				Date      string `json:"date"`
				HasTicket bool   `json:"hasTicket"`
				Total     int    `json:"total"`
			} `json:"days"`
		} `json:"calendar"`
		Recent []model.CalendarEntry `json:"recent"`
	}
	rec := env.call(t, env.calendar.GetMonth, http.MethodGet, "/v1/teams/lg/calendar", "", params, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, resp.Calendar.Year)
	assert.Equal(t, 7, resp.Calendar.Month)
	require.Len(t, resp.Calendar.Days, 31)
	assert.Len(t, resp.Recent, 3)

	// 2025-07-03 holds a game and a seed ticket entry.
	day := resp.Calendar.Days[2]
	assert.Equal(t, "2025-07-03", day.Date)
	assert.True(t, day.HasTicket)
	assert.Equal(t, 2, day.Total)

	t.Run("unknown team", func(t *testing.T) {
		rec := env.call(t, env.calendar.GetMonth, http.MethodGet, "/v1/teams/mets/calendar", "", map[string]string{"team": "mets"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad month", func(t *testing.T) {
		rec := env.call(t, env.calendar.GetMonth, http.MethodGet, "/v1/teams/lg/calendar?month=13", "", params, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDayResolvesTickets(t *testing.T) {
	env := newTestEnv()
	params := map[string]string{"team": "lg"}

	// Populate via a month load first.
	env.call(t, env.calendar.GetMonth, http.MethodGet, "/v1/teams/lg/calendar", "", params, nil)

	var resp struct {
		Entries []model.CalendarEntry    `json:"entries"`
		Tickets map[string]*model.Ticket `json:"tickets"`
	}
	dayParams := map[string]string{"team": "lg", "date": "2025-07-03"}
	rec := env.call(t, env.calendar.GetDay, http.MethodGet, "/v1/teams/lg/calendar/2025-07-03", "", dayParams, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Entries, 2)

	ticketEntry := resp.Entries[1]
	require.Equal(t, model.EntryTicket, ticketEntry.Type)
	require.Contains(t, resp.Tickets, ticketEntry.TicketID)
}

func TestCreateNote(t *testing.T) {
	env := newTestEnv()
	params := map[string]string{"team": "lg"}

	t.Run("created", func(t *testing.T) {
		var resp struct {
			Entry model.CalendarEntry `json:"entry"`
		}
		rec := env.call(t, env.calendar.CreateNote, http.MethodPost, "/v1/teams/lg/calendar/notes",
			`{"date":"2025-07-08","title":"첫 직관","content":"재밌었다","emotion":"happy"}`, params, &resp)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, resp.Entry.ID)
		assert.Equal(t, model.EntryNote, resp.Entry.Type)
	})

	t.Run("missing title", func(t *testing.T) {
		rec := env.call(t, env.calendar.CreateNote, http.MethodPost, "/v1/teams/lg/calendar/notes",
			`{"date":"2025-07-08","emotion":"happy"}`, params, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown emotion", func(t *testing.T) {
		rec := env.call(t, env.calendar.CreateNote, http.MethodPost, "/v1/teams/lg/calendar/notes",
			`{"date":"2025-07-08","title":"x","emotion":"furious"}`, params, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		rec := env.call(t, env.calendar.CreateNote, http.MethodPost, "/v1/teams/lg/calendar/notes",
			`{"date":"07/08","title":"x","emotion":"happy"}`, params, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTicketEndpoints(t *testing.T) {
	env := newTestEnv()
	params := map[string]string{"team": "lg"}

	t.Run("window open", func(t *testing.T) {
		var status ticketing.WindowStatus
		rec := env.call(t, env.ticket.GetWindow, http.MethodGet, "/v1/teams/lg/tickets/window", "", params, &status)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, status.Open)
		require.NotNil(t, status.Game)
	})

	t.Run("issue inside window", func(t *testing.T) {
		var resp struct {
			Ticket model.Ticket `json:"ticket"`
		}
		rec := env.call(t, env.ticket.Issue, http.MethodPost, "/v1/teams/lg/tickets",
			`{"type":"attendance"}`, params, &resp)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, model.TicketAttendance, resp.Ticket.Type)
	})

	t.Run("collection counts types", func(t *testing.T) {
		var resp struct {
			Items []model.Ticket `json:"items"`
			Stats struct {
				Total      int `json:"total"`
				Attendance int `json:"attendance"`
				TV         int `json:"tv"`
			} `json:"stats"`
		}
		rec := env.call(t, env.ticket.GetCollection, http.MethodGet, "/v1/teams/lg/tickets", "", params, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, resp.Stats.Total)
		assert.Equal(t, 1, resp.Stats.Attendance)
		assert.Equal(t, 0, resp.Stats.TV)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := env.call(t, env.ticket.Issue, http.MethodPost, "/v1/teams/lg/tickets",
			`{"type":"paper"}`, params, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("issue outside window", func(t *testing.T) {
		env.clk.at = time.Date(2025, 7, 19, 3, 0, 0, 0, time.UTC)
		rec := env.call(t, env.ticket.Issue, http.MethodPost, "/v1/teams/lg/tickets",
			`{"type":"tv"}`, params, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGlossaryBeginnerPreference(t *testing.T) {
	env := newTestEnv()

	var all struct {
		Items []json.RawMessage `json:"items"`
	}
	rec := env.call(t, env.glossary.ListTerms, http.MethodGet, "/v1/glossary", "", nil, &all)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, all.Items, 50)

	// Turning beginner mode on narrows the default listing.
	env.call(t, env.team.SetBeginnerMode, http.MethodPut, "/v1/prefs/beginner-mode", `{"enabled":true}`, nil, nil)
	var narrowed struct {
		Items []json.RawMessage `json:"items"`
	}
	env.call(t, env.glossary.ListTerms, http.MethodGet, "/v1/glossary", "", nil, &narrowed)
	assert.Less(t, len(narrowed.Items), len(all.Items))

	// An explicit override wins over the stored flag.
	var overridden struct {
		Items []json.RawMessage `json:"items"`
	}
	env.call(t, env.glossary.ListTerms, http.MethodGet, "/v1/glossary?beginner=false", "", nil, &overridden)
	assert.Len(t, overridden.Items, 50)
}

func TestCommunityEndpoints(t *testing.T) {
	env := newTestEnv()

	t.Run("create uses the selected team avatar", func(t *testing.T) {
		env.call(t, env.team.SetSelectedTeam, http.MethodPut, "/v1/teams/selected", `{"team":"doosan"}`, nil, nil)
		var resp struct {
			Post model.Post `json:"post"`
		}
		rec := env.call(t, env.feed.CreatePost, http.MethodPost, "/v1/community/posts",
			`{"content":"오늘 경기 최고","type":"game"}`, nil, &resp)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "나", resp.Post.Author)
		assert.Equal(t, "🐻", resp.Post.Avatar)
	})

	t.Run("blank post rejected", func(t *testing.T) {
		rec := env.call(t, env.feed.CreatePost, http.MethodPost, "/v1/community/posts",
			`{"content":"  "}`, nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("like unknown post", func(t *testing.T) {
		rec := env.call(t, env.feed.ToggleLike, http.MethodPost, "/v1/community/posts/zzz/like", "",
			map[string]string{"id": "zzz"}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("comment round trip", func(t *testing.T) {
		var posts struct {
			Items []model.Post `json:"items"`
		}
		env.call(t, env.feed.ListPosts, http.MethodGet, "/v1/community/posts", "", nil, &posts)
		require.NotEmpty(t, posts.Items)
		target := posts.Items[0].ID

		rec := env.call(t, env.feed.AddComment, http.MethodPost, "/v1/community/posts/"+target+"/comments",
			`{"content":"응원합니다"}`, map[string]string{"id": target}, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var comments struct {
			Items []model.Comment `json:"items"`
		}
		env.call(t, env.feed.ListComments, http.MethodGet, "/v1/community/posts/"+target+"/comments", "",
			map[string]string{"id": target}, &comments)
		require.NotEmpty(t, comments.Items)
		assert.Equal(t, "응원합니다", comments.Items[len(comments.Items)-1].Content)
	})

	t.Run("stats and topics", func(t *testing.T) {
		var stats model.CommunityStats
		rec := env.call(t, env.feed.Stats, http.MethodGet, "/v1/community/stats", "", nil, &stats)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1234, stats.ActiveFans)

		var topics struct {
			Items []model.Topic `json:"items"`
		}
		env.call(t, env.feed.HotTopics, http.MethodGet, "/v1/community/topics", "", nil, &topics)
		assert.Len(t, topics.Items, 5)
	})
}

func TestSummaryEndpoints(t *testing.T) {
	env := newTestEnv()
	h := &SummaryHandler{}

	var latest struct {
		Result string `json:"result"`
		MVP    struct {
			Name string `json:"name"`
		} `json:"mvp"`
	}
	rec := env.call(t, h.GetLatest, http.MethodGet, "/v1/games/latest", "", nil, &latest)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "WIN", latest.Result)
	assert.Equal(t, "김민수", latest.MVP.Name)

	var next struct {
		Prediction struct {
			Win  int `json:"win"`
			Lose int `json:"lose"`
		} `json:"prediction"`
	}
	rec = env.call(t, h.GetNextGame, http.MethodGet, "/v1/games/next", "", nil, &next)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, next.Prediction.Win+next.Prediction.Lose)
}
