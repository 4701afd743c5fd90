package tracker

import "github.com/akyairhashvil/rollcall/internal/models"

// StartSeason appends a new empty season to the ledger, making it the
// active one. The previous season is closed by position, not by flag.
func (a *App) StartSeason(startDate, endDate string) error {
	if err := validateDate("start date", startDate); err != nil {
		return err
	}
	if err := validateDate("end date", endDate); err != nil {
		return err
	}
	if startDate > endDate {
		return &ValidationError{Field: "date range", Reason: "start date is after end date"}
	}
	a.seasons = append(a.seasons, models.Season{StartDate: startDate, EndDate: endDate})
	return a.Save()
}

// CommitTrainingDay appends the current draft to the active season as an
// immutable snapshot and starts a fresh draft for today. When the
// draft's date falls outside the active season's range the ledger is
// left untouched and the caller decides what to do; the tracker never
// commits into a non-covering season.
func (a *App) CommitTrainingDay() error {
	if !a.HasActiveSeason() {
		return &NotFoundError{Resource: "active season"}
	}
	active := &a.seasons[len(a.seasons)-1]
	if !active.Covers(a.session.Date) {
		return &OutOfRangeError{
			Date:      a.session.Date,
			StartDate: active.StartDate,
			EndDate:   active.EndDate,
		}
	}
	active.TrainingDays = append(active.TrainingDays, models.TrainingDay{
		Date:    a.session.Date,
		Records: a.session.Records.Copy(),
	})
	a.session = models.NewSession(a.today())
	return a.Save()
}
