// Package calendar holds the shared recurrence value objects used by tasks,
// access reviews and calendar events.
package calendar

// RecurrencePattern says how often something repeats.
type RecurrencePattern struct {
	Type           string   `json:"type,omitempty"`
	Interval       int      `json:"interval,omitempty"`
	Month          int      `json:"month,omitempty"`
	DayOfMonth     int      `json:"dayOfMonth,omitempty"`
	DaysOfWeek     []string `json:"daysOfWeek,omitempty"`
	FirstDayOfWeek string   `json:"firstDayOfWeek,omitempty"`
	Index          string   `json:"index,omitempty"`
}

// RecurrenceRange bounds the dates a recurrence pattern applies over.
// Type is endDate, noEnd or numbered; EndDate is required for endDate and
// NumberOfOccurrences must be positive for numbered.
type RecurrenceRange struct {
	Type                string `json:"type,omitempty"`
	StartDate           string `json:"startDate,omitempty"`
	EndDate             string `json:"endDate,omitempty"`
	NumberOfOccurrences int    `json:"numberOfOccurrences,omitempty"`
	RecurrenceTimeZone  string `json:"recurrenceTimeZone,omitempty"`
}

// Recurrence pairs a pattern with its range.
type Recurrence struct {
	Pattern RecurrencePattern `json:"pattern,omitempty"`
	Range   RecurrenceRange   `json:"range,omitempty"`
}
