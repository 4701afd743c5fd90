package tracker

import (
	"errors"
	"reflect"
	"testing"
)

func TestSetAbsenceIdempotent(t *testing.T) {
	app := setupTestApp(t)
	if err := app.SetAbsence(1, true); err != nil {
		t.Fatalf("SetAbsence failed: %v", err)
	}
	once := app.Session()

	if err := app.SetAbsence(1, true); err != nil {
		t.Fatalf("second SetAbsence failed: %v", err)
	}
	twice := app.Session()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("repeated SetAbsence changed the session: %+v vs %+v", once, twice)
	}
}

func TestSetAbsenceToggle(t *testing.T) {
	app := setupTestApp(t)
	if err := app.SetAbsence(4, true); err != nil {
		t.Fatalf("SetAbsence failed: %v", err)
	}
	if !app.Session().Records[4] {
		t.Fatalf("expected member 4 flagged absent")
	}
	if err := app.SetAbsence(4, false); err != nil {
		t.Fatalf("SetAbsence back failed: %v", err)
	}
	if app.Session().Records[4] {
		t.Fatalf("expected member 4 back to present")
	}
}

func TestResetSession(t *testing.T) {
	app := setupTestApp(t)
	if err := app.SetAbsence(1, true); err != nil {
		t.Fatalf("SetAbsence failed: %v", err)
	}
	if err := app.ResetSession("2024-03-16"); err != nil {
		t.Fatalf("ResetSession failed: %v", err)
	}
	session := app.Session()
	if session.Date != "2024-03-16" || len(session.Records) != 0 {
		t.Fatalf("expected empty session for new date, got %+v", session)
	}

	var ve *ValidationError
	if err := app.ResetSession("16-03-2024"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for malformed date, got %v", err)
	}
}

func TestStaleSessionIsDiscardedOnLoad(t *testing.T) {
	store := setupTestStore(t)
	yesterday := NewWithClock(store, func() string { return "2024-03-14" })
	if err := yesterday.SetAbsence(1, true); err != nil {
		t.Fatalf("SetAbsence failed: %v", err)
	}

	today := NewWithClock(store, fixedClock)
	session := today.Session()
	if session.Date != testToday {
		t.Fatalf("expected fresh session dated %s, got %s", testToday, session.Date)
	}
	if len(session.Records) != 0 {
		t.Fatalf("stale draft must be abandoned, got %+v", session.Records)
	}
}
