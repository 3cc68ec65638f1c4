package extractor

import "time"

// Entities holds the structured slots pulled out of one free-text query.
// Zero values mean "absent"; DurationDays always carries at least the
// documented default of 1 day.
type Entities struct {
	Date         *time.Time `json:"date,omitempty"`
	DurationDays int        `json:"duration_days"`
	LeaveType    string     `json:"leave_type,omitempty"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	Months       []string   `json:"months,omitempty"`
}
