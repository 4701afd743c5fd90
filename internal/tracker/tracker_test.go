package tracker

import (
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/rollcall/internal/storage"
)

const testToday = "2024-03-15"

func fixedClock() string { return testToday }

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("store close failed: %v", err)
		}
	})
	return s
}

func setupTestApp(t *testing.T) *App {
	t.Helper()
	return NewWithClock(setupTestStore(t), fixedClock)
}

func TestFirstLoadSeedsDefaults(t *testing.T) {
	app := setupTestApp(t)
	roster := app.Roster()
	if len(roster) != 21 {
		t.Fatalf("expected 21 seeded members, got %d", len(roster))
	}
	if roster[0].ID != 1 || roster[0].Name != "Player 1" {
		t.Fatalf("unexpected first member: %+v", roster[0])
	}
	if roster[20].ID != 21 || roster[20].Name != "Player 21" {
		t.Fatalf("unexpected last member: %+v", roster[20])
	}
	if app.HasActiveSeason() {
		t.Fatalf("expected empty ledger on first load")
	}
	session := app.Session()
	if session.Date != testToday || len(session.Records) != 0 {
		t.Fatalf("expected empty today session, got %+v", session)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	app := NewWithClock(store, fixedClock)

	if err := app.StartSeason("2024-01-01", "2024-06-30"); err != nil {
		t.Fatalf("StartSeason failed: %v", err)
	}
	if _, err := app.AddMember("Jane"); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if err := app.SetAbsence(3, true); err != nil {
		t.Fatalf("SetAbsence failed: %v", err)
	}
	if err := app.CommitTrainingDay(); err != nil {
		t.Fatalf("CommitTrainingDay failed: %v", err)
	}
	if err := app.SetAbsence(5, true); err != nil {
		t.Fatalf("SetAbsence after commit failed: %v", err)
	}

	reloaded := NewWithClock(store, fixedClock)

	if len(reloaded.Roster()) != len(app.Roster()) {
		t.Fatalf("roster size mismatch: %d vs %d", len(reloaded.Roster()), len(app.Roster()))
	}
	if reloaded.Roster()[21].Name != "Jane" {
		t.Fatalf("expected added member to survive reload")
	}
	season, ok := reloaded.ActiveSeason()
	if !ok {
		t.Fatalf("expected active season after reload")
	}
	if len(season.TrainingDays) != 1 {
		t.Fatalf("expected 1 committed day, got %d", len(season.TrainingDays))
	}
	if !season.TrainingDays[0].Records[3] {
		t.Fatalf("expected member 3 absent in committed day")
	}
	session := reloaded.Session()
	if session.Date != testToday || !session.Records[5] {
		t.Fatalf("expected same-date session restore, got %+v", session)
	}
}

func TestSeasonAt(t *testing.T) {
	app := setupTestApp(t)
	if _, err := app.SeasonAt(0); err == nil {
		t.Fatalf("expected error for empty ledger")
	}
	if err := app.StartSeason("2024-01-01", "2024-06-30"); err != nil {
		t.Fatalf("StartSeason failed: %v", err)
	}
	season, err := app.SeasonAt(0)
	if err != nil {
		t.Fatalf("SeasonAt failed: %v", err)
	}
	if season.StartDate != "2024-01-01" {
		t.Fatalf("unexpected season: %+v", season)
	}
}
