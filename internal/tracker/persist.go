package tracker

import (
	"encoding/json"

	"github.com/akyairhashvil/rollcall/internal/config"
	"github.com/akyairhashvil/rollcall/internal/models"
	"github.com/akyairhashvil/rollcall/internal/storage"
	"github.com/akyairhashvil/rollcall/internal/util"
)

// load reconstructs the three aggregates from the store. Read failures
// and corrupt values are logged and replaced by defaults, never fatal.
func (a *App) load() {
	a.roster = defaultRoster()
	if raw, ok, err := a.store.Get(config.KeyRoster); err != nil {
		util.LogError("load roster", err)
	} else if ok {
		var roster []models.Member
		if err := json.Unmarshal([]byte(raw), &roster); err != nil {
			util.LogError("decode roster", err)
		} else {
			a.roster = roster
		}
	}

	a.seasons = nil
	if raw, ok, err := a.store.Get(config.KeySeasons); err != nil {
		util.LogError("load seasons", err)
	} else if ok {
		var seasons []models.Season
		if err := json.Unmarshal([]byte(raw), &seasons); err != nil {
			util.LogError("decode seasons", err)
		} else {
			a.seasons = seasons
		}
	}

	// A persisted draft is only picked up again on the day it was
	// started; yesterday's unfinished checklist is abandoned.
	a.session = models.NewSession(a.today())
	if raw, ok, err := a.store.Get(config.KeySession); err != nil {
		util.LogError("load session", err)
	} else if ok {
		var session models.Session
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			util.LogError("decode session", err)
		} else if session.Date == a.session.Date {
			if session.Records == nil {
				session.Records = models.TrainingRecord{}
			}
			a.session = session
		}
	}
}

// Save writes all three aggregates to the store. All writes run before
// control returns; a failure is reported to the caller while the
// in-memory state stays authoritative so the user can retry.
func (a *App) Save() error {
	if err := a.saveKey(config.KeyRoster, a.roster); err != nil {
		return err
	}
	if err := a.saveKey(config.KeySeasons, a.seasons); err != nil {
		return err
	}
	return a.saveKey(config.KeySession, a.session)
}

func (a *App) saveKey(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &storage.StorageError{Op: "encode", Key: key, Err: err}
	}
	return a.store.Set(key, string(data))
}
