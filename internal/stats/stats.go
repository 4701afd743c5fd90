// Package stats contains the attendance statistics calculations. All
// functions are pure: they read the roster, session, and season values
// and return numeric results. Percentages are numbers, not strings;
// formatting happens at the presentation boundary.
package stats

import (
	"math"

	"github.com/akyairhashvil/rollcall/internal/models"
)

// Live summarizes the in-progress session against the roster.
type Live struct {
	PresentCount int
	AbsentCount  int
	PresentPct   float64
	AbsentPct    float64
}

// SeasonOverall aggregates a whole season: one check per member per
// training day.
type SeasonOverall struct {
	TrainingDays int
	TotalChecks  int
	TotalAbsent  int
	PresentPct   float64
	AbsentPct    float64
}

// MemberSeason is one member's absence record over a season.
type MemberSeason struct {
	Member      models.Member
	AbsentCount int
	AbsentPct   float64
}

// LiveStats computes present/absent counts and percentages for the
// current draft. Only flags belonging to rostered members count; stale
// ids left behind by removed members are ignored.
func LiveStats(roster []models.Member, session models.Session) Live {
	absent := 0
	for _, m := range roster {
		if session.Records[m.ID] {
			absent++
		}
	}
	s := Live{
		PresentCount: len(roster) - absent,
		AbsentCount:  absent,
	}
	if len(roster) == 0 {
		return s
	}
	total := float64(len(roster))
	s.PresentPct = Round1(float64(s.PresentCount) / total * 100)
	s.AbsentPct = Round1(float64(s.AbsentCount) / total * 100)
	return s
}

// SeasonOverallStats aggregates absences across every training day of the
// season. TotalChecks is days times roster size; with zero checks both
// percentages are zero.
func SeasonOverallStats(roster []models.Member, season models.Season) SeasonOverall {
	s := SeasonOverall{
		TrainingDays: len(season.TrainingDays),
		TotalChecks:  len(season.TrainingDays) * len(roster),
	}
	for _, day := range season.TrainingDays {
		s.TotalAbsent += day.Records.AbsentCount()
	}
	if s.TotalChecks == 0 {
		return s
	}
	s.AbsentPct = Round1(float64(s.TotalAbsent) / float64(s.TotalChecks) * 100)
	s.PresentPct = Round1(100 - s.AbsentPct)
	return s
}

// PerMemberStats returns each member's absence count and percentage over
// the season, in roster order.
func PerMemberStats(roster []models.Member, season models.Season) []MemberSeason {
	days := len(season.TrainingDays)
	out := make([]MemberSeason, 0, len(roster))
	for _, m := range roster {
		absent := 0
		for _, day := range season.TrainingDays {
			if day.Records[m.ID] {
				absent++
			}
		}
		ms := MemberSeason{Member: m, AbsentCount: absent}
		if days > 0 {
			ms.AbsentPct = Round1(float64(absent) / float64(days) * 100)
		}
		out = append(out, ms)
	}
	return out
}

// Round1 rounds to one decimal place, half up.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
