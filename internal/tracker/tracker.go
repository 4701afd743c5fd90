// Package tracker owns the application state: the roster, the season
// ledger, and the in-progress training session. Every mutating operation
// writes through to the durable store immediately after the in-memory
// change succeeds; callers surface write failures as warnings and retry
// by re-invoking the action.
package tracker

import (
	"time"

	"github.com/akyairhashvil/rollcall/internal/config"
	"github.com/akyairhashvil/rollcall/internal/models"
	"github.com/akyairhashvil/rollcall/internal/storage"
)

// App is the single application-state aggregate. The durable store is
// its only side-effecting dependency.
type App struct {
	store storage.KV

	roster  []models.Member
	seasons []models.Season
	session models.Session

	today func() string
}

// New loads the application state from the store. Missing or corrupt
// values degrade to defaults: a seeded roster, an empty ledger, and an
// empty session for today.
func New(store storage.KV) *App {
	return NewWithClock(store, func() string {
		return time.Now().Format(config.DateFormat)
	})
}

// NewWithClock is New with an injectable current-date function.
func NewWithClock(store storage.KV, today func() string) *App {
	a := &App{store: store, today: today}
	a.load()
	return a
}

// Roster returns the members in insertion order. Read-only view.
func (a *App) Roster() []models.Member { return a.roster }

// Seasons returns the ledger in creation order. Read-only view.
func (a *App) Seasons() []models.Season { return a.seasons }

// Session returns the current draft. Read-only view.
func (a *App) Session() models.Session { return a.session }

// HasActiveSeason reports whether the ledger has a season to commit into.
func (a *App) HasActiveSeason() bool { return len(a.seasons) > 0 }

// ActiveSeason returns the last season in the ledger.
func (a *App) ActiveSeason() (models.Season, bool) {
	if len(a.seasons) == 0 {
		return models.Season{}, false
	}
	return a.seasons[len(a.seasons)-1], true
}

// SeasonAt returns the season at the given ledger index.
func (a *App) SeasonAt(index int) (models.Season, error) {
	if index < 0 || index >= len(a.seasons) {
		return models.Season{}, &NotFoundError{Resource: "season", ID: int64(index)}
	}
	return a.seasons[index], nil
}

func validateDate(field, date string) error {
	if _, err := time.Parse(config.DateFormat, date); err != nil {
		return &ValidationError{Field: field, Reason: "must be a YYYY-MM-DD date"}
	}
	return nil
}
