package tracker

import "fmt"

// ValidationError reports input rejected before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing a missing entity.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("no %s", e.Resource)
}

// OutOfRangeError reports a training date outside the active season's
// range. The caller decides whether to start a covering season or abort;
// the tracker never picks a different season on its own.
type OutOfRangeError struct {
	Date      string
	StartDate string
	EndDate   string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("date %s outside season %s to %s", e.Date, e.StartDate, e.EndDate)
}
