package model

import (
	"time"

	"tavolo/shared/model"
)

const (
	TableName  = "opening_hours"
	EntityName = "opening_hours"

	FieldID          = "id"
	FieldDate        = "date"
	FieldStatus      = "status"
	FieldLunchStart  = "lunch_start"
	FieldLunchEnd    = "lunch_end"
	FieldDinnerStart = "dinner_start"
	FieldDinnerEnd   = "dinner_end"
	FieldIsCustom    = "is_custom"
)

const (
	WeeklyTableName  = "weekly_defaults"
	WeeklyEntityName = "weekly_default"

	FieldDayOfWeek = "day_of_week"
)

const (
	StatusFullDay    = "full_day"
	StatusLunchOnly  = "lunch_only"
	StatusDinnerOnly = "dinner_only"
	StatusClosed     = "closed"
)

// OpeningHours is the per-date service schedule. Window bounds are HH:MM
// wall-clock strings in the application timezone. IsCustom marks a manual
// override; bulk weekly-default updates never touch custom dates.
type OpeningHours struct {
	ID          string    `db:"id"`
	Date        time.Time `db:"date"`
	Status      string    `db:"status"`
	LunchStart  string    `db:"lunch_start"`
	LunchEnd    string    `db:"lunch_end"`
	DinnerStart string    `db:"dinner_start"`
	DinnerEnd   string    `db:"dinner_end"`
	IsCustom    bool      `db:"is_custom"`
	model.Metadata
}

// WeeklyDefault is the weekday pattern opening_hours rows are generated
// from. DayOfWeek follows time.Weekday (0 = Sunday).
type WeeklyDefault struct {
	ID          string `db:"id"`
	DayOfWeek   int    `db:"day_of_week"`
	Status      string `db:"status"`
	LunchStart  string `db:"lunch_start"`
	LunchEnd    string `db:"lunch_end"`
	DinnerStart string `db:"dinner_start"`
	DinnerEnd   string `db:"dinner_end"`
	model.Metadata
}

// Window is a [Start,End) service window in HH:MM wall-clock time.
type Window struct {
	Start string
	End   string
}

// DaySchedule is the resolved service-window set for one calendar date.
type DaySchedule struct {
	Status string
	Lunch  Window
	Dinner Window
}

func (s DaySchedule) Closed() bool {
	return s.Status == StatusClosed
}

func (s DaySchedule) HasLunch() bool {
	return s.Status == StatusFullDay || s.Status == StatusLunchOnly
}

func (s DaySchedule) HasDinner() bool {
	return s.Status == StatusFullDay || s.Status == StatusDinnerOnly
}

func (h *OpeningHours) Schedule() DaySchedule {
	return DaySchedule{
		Status: h.Status,
		Lunch:  Window{Start: h.LunchStart, End: h.LunchEnd},
		Dinner: Window{Start: h.DinnerStart, End: h.DinnerEnd},
	}
}

func (w *WeeklyDefault) Schedule() DaySchedule {
	return DaySchedule{
		Status: w.Status,
		Lunch:  Window{Start: w.LunchStart, End: w.LunchEnd},
		Dinner: Window{Start: w.DinnerStart, End: w.DinnerEnd},
	}
}

// Resolution sources, from most to least specific.
const (
	SourceOverride = "override"
	SourceWeekly   = "weekly"
	SourceFallback = "fallback"
)

// Resolution is the outcome of resolving a date's schedule. Source tells
// callers whether the value came from a per-date record, the weekly
// pattern, or the hard-coded fallback; FallbackReason is set only when the
// resolver degraded because the store failed or had no record.
type Resolution struct {
	Schedule       DaySchedule
	Source         string
	FallbackReason string
}

// DefaultSchedule is the hard-coded fallback used when neither a per-date
// record nor a weekly default exists.
func DefaultSchedule() DaySchedule {
	return DaySchedule{
		Status: StatusFullDay,
		Lunch:  Window{Start: "12:00", End: "15:00"},
		Dinner: Window{Start: "19:00", End: "22:30"},
	}
}
