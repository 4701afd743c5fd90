// Package testutil provides fluent builders for test fixtures.
package testutil

import "github.com/akyairhashvil/rollcall/internal/models"

// RosterBuilder provides a fluent API for creating test rosters.
type RosterBuilder struct {
	members []models.Member
}

func NewRoster() *RosterBuilder {
	return &RosterBuilder{}
}

// WithNames appends members with sequential ids starting at 1.
func (b *RosterBuilder) WithNames(names ...string) *RosterBuilder {
	for _, name := range names {
		b.members = append(b.members, models.Member{
			ID:   int64(len(b.members) + 1),
			Name: name,
		})
	}
	return b
}

// WithMember appends a member with an explicit id.
func (b *RosterBuilder) WithMember(id int64, name string) *RosterBuilder {
	b.members = append(b.members, models.Member{ID: id, Name: name})
	return b
}

func (b *RosterBuilder) Build() []models.Member {
	return b.members
}

// SeasonBuilder provides a fluent API for creating test seasons.
type SeasonBuilder struct {
	season models.Season
}

func NewSeason(start, end string) *SeasonBuilder {
	return &SeasonBuilder{season: models.Season{StartDate: start, EndDate: end}}
}

// WithDay appends a committed training day with the given members absent.
func (b *SeasonBuilder) WithDay(date string, absentIDs ...int64) *SeasonBuilder {
	records := models.TrainingRecord{}
	for _, id := range absentIDs {
		records[id] = true
	}
	b.season.TrainingDays = append(b.season.TrainingDays, models.TrainingDay{
		Date:    date,
		Records: records,
	})
	return b
}

func (b *SeasonBuilder) Build() models.Season {
	return b.season
}
