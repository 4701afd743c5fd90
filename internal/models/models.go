// Package models defines the persistent data types of the attendance
// tracker. The structs carry JSON tags because aggregates are serialized
// wholesale into the durable key-value store.
package models

// Member is a roster entry with a stable numeric id and a display name.
type Member struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TrainingRecord maps member ids to absence flags. A missing key means
// present. Keys may reference members that were later removed from the
// roster; such entries are tolerated downstream.
type TrainingRecord map[int64]bool

// Copy returns an independent copy of the record map.
func (r TrainingRecord) Copy() TrainingRecord {
	out := make(TrainingRecord, len(r))
	for id, absent := range r {
		out[id] = absent
	}
	return out
}

// AbsentCount returns the number of entries flagged absent.
func (r TrainingRecord) AbsentCount() int {
	n := 0
	for _, absent := range r {
		if absent {
			n++
		}
	}
	return n
}

// TrainingDay is a committed attendance snapshot for one date. It is
// immutable once appended to a season.
type TrainingDay struct {
	Date    string         `json:"date"`
	Records TrainingRecord `json:"records"`
}

// Season is a bounded date range holding its committed training days in
// commit order. The range never changes after creation.
type Season struct {
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	TrainingDays []TrainingDay `json:"trainingDays"`
}

// Covers reports whether date falls inside the season's range, inclusive
// on both ends.
func (s Season) Covers(date string) bool {
	return s.StartDate <= date && date <= s.EndDate
}

// Session is the in-progress attendance draft for the current date. It
// becomes a TrainingDay when committed into a season.
type Session struct {
	Date    string         `json:"date"`
	Records TrainingRecord `json:"records"`
}

// NewSession returns an empty draft for the given date.
func NewSession(date string) Session {
	return Session{Date: date, Records: TrainingRecord{}}
}
