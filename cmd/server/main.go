package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/baseballplanet/fan-engagement/internal/clock"
	"github.com/baseballplanet/fan-engagement/internal/config"
	"github.com/baseballplanet/fan-engagement/internal/handler"
	"github.com/baseballplanet/fan-engagement/internal/kv"
	appmw "github.com/baseballplanet/fan-engagement/internal/middleware"
	"github.com/baseballplanet/fan-engagement/internal/queue"
	"github.com/baseballplanet/fan-engagement/internal/repository"
	"github.com/baseballplanet/fan-engagement/internal/router"
	queue_publisher "github.com/baseballplanet/fan-engagement/internal/service"
	"github.com/baseballplanet/fan-engagement/internal/ticketing"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// Redis backs the fan state store plus response caching and rate
	// limiting.  Without it the server stays usable on an in-memory
	// store with those middlewares disabled.
	rdb := config.NewRedisClient()
	var store kv.Store
	if rdb != nil {
		store = kv.NewRedis(rdb, "")
	} else {
		log.Println("redis unavailable, using in-memory store")
		store = kv.NewMemory()
	}

	// Game dates and the ticket window follow the configured timezone.
	clk := clock.Zoned{Loc: cfg.Location}
	entries := repository.NewEntryRepo(store)
	tickets := repository.NewTicketRepo(store)
	prefs := repository.NewPrefsRepo(store)
	feed := repository.NewCommunityRepo(clk)

	issuer := ticketing.NewIssuer(clk, tickets, entries, queue_publisher.PublishTicketIssued)
	watcher := ticketing.NewWatcher(issuer, cfg.WatchInterval)
	watcher.Start()
	defer watcher.Stop()

	// Background consumer mirrors issued tickets into logs/tickets.log.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(appmw.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterTeams(e, &handler.TeamHandler{Prefs: prefs})
	router.RegisterCalendar(e, &handler.CalendarHandler{Entries: entries, Tickets: tickets, Clock: clk})
	router.RegisterTickets(e, &handler.TicketHandler{Issuer: issuer, Watcher: watcher, Tickets: tickets})
	router.RegisterGlossary(e, &handler.GlossaryHandler{Prefs: prefs})
	router.RegisterCommunity(e, &handler.CommunityHandler{Feed: feed, Prefs: prefs})
	router.RegisterSummary(e, &handler.SummaryHandler{})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
