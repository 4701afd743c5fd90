package tracker

import "github.com/akyairhashvil/rollcall/internal/models"

// SetAbsence flags a member absent or present in the current draft and
// saves. Setting the value already recorded is a no-op and skips the
// write.
func (a *App) SetAbsence(memberID int64, absent bool) error {
	if current, ok := a.session.Records[memberID]; ok && current == absent {
		return nil
	}
	a.session.Records[memberID] = absent
	return a.Save()
}

// ResetSession replaces the draft with an empty one for the given date.
func (a *App) ResetSession(date string) error {
	if err := validateDate("date", date); err != nil {
		return err
	}
	a.session = models.NewSession(date)
	return a.Save()
}
