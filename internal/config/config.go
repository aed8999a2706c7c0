package config // package config loads application configuration from environment variables

import (
	"log"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Game dates and ticket windows are evaluated in
// the configured timezone, which defaults to KBO's home timezone.
type Config struct {
	Env           string         // application environment (e.g. "dev", "prod")
	Port          string         // HTTP port to listen on
	Location      *time.Location // timezone for schedules and ticket windows
	WatchInterval time.Duration  // how often the ticket window watcher re-evaluates
}

// Load reads configuration values from environment variables and returns a
// Config.  All variables have sensible defaults so the server starts with
// an empty environment.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		Location:      loadLocation(getenv("APP_TZ", "Asia/Seoul")),
		WatchInterval: envDur("TICKET_WATCH_INTERVAL", time.Minute),
	}
}

// loadLocation resolves a timezone name, falling back to the local zone when
// the name is unknown so a missing tzdata package does not stop the server.
func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("config: unknown timezone %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}
