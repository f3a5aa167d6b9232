package domain

import "time"

type DateRange struct {
	Start time.Time `gorm:"column:start" json:"start"`
	End   time.Time `gorm:"column:end" json:"end"`
}

func (r DateRange) IsValid() bool {
	return r.Start.Before(r.End)
}

func (r DateRange) Validate() error {
	if !r.IsValid() {
		return &InvalidLeasePeriodError{Start: r.Start, End: r.End}
	}
	return nil
}

// Overlaps reports whether the two ranges share any instant.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}
