package ticketing

import (
	"sync"
	"time"

	"github.com/baseballplanet/fan-engagement/internal/model"
)

// Watcher re-evaluates the issuance window on a fixed interval and
// caches the latest snapshot per team, so window state and countdown
// strings served to clients update once per minute rather than per
// request.  Stop tears the poller down; there are no other
// cancellation semantics.
type Watcher struct {
	issuer   *Issuer
	interval time.Duration

	mu     sync.RWMutex
	status map[model.Team]WindowStatus

	stop chan struct{}
	done chan struct{}
}

// NewWatcher creates a Watcher polling at the given interval.
// Non-positive intervals fall back to one minute.
func NewWatcher(issuer *Issuer, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watcher{
		issuer:   issuer,
		interval: interval,
		status:   make(map[model.Team]WindowStatus),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start computes an initial snapshot for every team and launches the
// polling goroutine.
func (w *Watcher) Start() {
	w.refresh()
	go w.loop()
}

func (w *Watcher) loop() {
	defer close(w.done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.refresh()
		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) refresh() {
	fresh := make(map[model.Team]WindowStatus, len(model.AllTeams()))
	for _, t := range model.AllTeams() {
		fresh[t] = w.issuer.Window(t)
	}
	w.mu.Lock()
	w.status = fresh
	w.mu.Unlock()
}

// Status returns the last computed window snapshot for the team.
func (w *Watcher) Status(team model.Team) WindowStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.status[team]
}

// Stop halts the poller and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stop)
	<-w.done
}
