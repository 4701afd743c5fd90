package tracker

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/rollcall/internal/config"
	"github.com/akyairhashvil/rollcall/internal/models"
)

// defaultRoster seeds the placeholder roster used on first load.
func defaultRoster() []models.Member {
	roster := make([]models.Member, 0, config.DefaultRosterSize)
	for i := 1; i <= config.DefaultRosterSize; i++ {
		roster = append(roster, models.Member{
			ID:   int64(i),
			Name: fmt.Sprintf("%s %d", config.DefaultNamePrefix, i),
		})
	}
	return roster
}

// AddMember appends a member with the next free id. The returned error,
// if any, comes from the write-through save; the member is kept in
// memory regardless.
func (a *App) AddMember(name string) (models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Member{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	m := models.Member{ID: a.nextMemberID(), Name: name}
	a.roster = append(a.roster, m)
	return m, a.Save()
}

// RenameMember changes a member's display name in place.
func (a *App) RenameMember(id int64, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	for i := range a.roster {
		if a.roster[i].ID == id {
			a.roster[i].Name = newName
			return a.Save()
		}
	}
	return &NotFoundError{Resource: "member", ID: id}
}

// RemoveMember deletes a member from the roster and drops any flag for
// them from the current draft. Committed training days are left alone.
func (a *App) RemoveMember(id int64) error {
	for i := range a.roster {
		if a.roster[i].ID == id {
			a.roster = append(a.roster[:i], a.roster[i+1:]...)
			delete(a.session.Records, id)
			return a.Save()
		}
	}
	return &NotFoundError{Resource: "member", ID: id}
}

func (a *App) nextMemberID() int64 {
	var max int64
	for _, m := range a.roster {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}
