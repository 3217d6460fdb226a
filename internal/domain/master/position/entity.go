package position

import "time"

// Position is a job grade carrying the base salary used by settlement
// generation. EffectiveDate allows a grade's salary to change over
// time without rewriting history.
type Position struct {
	ID            string
	Code          string
	Name          string
	Level         int
	BaseSalary    int64
	EffectiveDate time.Time
	Description   *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
