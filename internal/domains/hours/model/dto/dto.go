package dto

import (
	"tavolo/internal/domains/hours/model"
	"tavolo/shared/constant"
	"tavolo/shared/timezone"
)

type SetDateRequest struct {
	Status      string `json:"status"       validate:"required,oneof=full_day lunch_only dinner_only closed"`
	LunchStart  string `json:"lunch_start"  validate:"omitempty,len=5"`
	LunchEnd    string `json:"lunch_end"    validate:"omitempty,len=5"`
	DinnerStart string `json:"dinner_start" validate:"omitempty,len=5"`
	DinnerEnd   string `json:"dinner_end"   validate:"omitempty,len=5"`
}

type SetWeeklyDefaultRequest struct {
	DayOfWeek   int    `json:"day_of_week"  validate:"gte=0,lte=6"`
	Status      string `json:"status"       validate:"required,oneof=full_day lunch_only dinner_only closed"`
	LunchStart  string `json:"lunch_start"  validate:"omitempty,len=5"`
	LunchEnd    string `json:"lunch_end"    validate:"omitempty,len=5"`
	DinnerStart string `json:"dinner_start" validate:"omitempty,len=5"`
	DinnerEnd   string `json:"dinner_end"   validate:"omitempty,len=5"`
}

type DayScheduleResponse struct {
	Date           string `json:"date"`
	Status         string `json:"status"`
	LunchStart     string `json:"lunch_start,omitempty"`
	LunchEnd       string `json:"lunch_end,omitempty"`
	DinnerStart    string `json:"dinner_start,omitempty"`
	DinnerEnd      string `json:"dinner_end,omitempty"`
	Source         string `json:"source"`
	FallbackReason string `json:"fallback_reason,omitempty"`
}

func (r *DayScheduleResponse) FromResolution(date string, res model.Resolution) {
	r.Date = date
	r.Status = res.Schedule.Status
	r.Source = res.Source
	r.FallbackReason = res.FallbackReason

	if res.Schedule.HasLunch() {
		r.LunchStart = res.Schedule.Lunch.Start
		r.LunchEnd = res.Schedule.Lunch.End
	}

	if res.Schedule.HasDinner() {
		r.DinnerStart = res.Schedule.Dinner.Start
		r.DinnerEnd = res.Schedule.Dinner.End
	}
}

type OpeningHoursResponse struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	LunchStart  string `json:"lunch_start"`
	LunchEnd    string `json:"lunch_end"`
	DinnerStart string `json:"dinner_start"`
	DinnerEnd   string `json:"dinner_end"`
	IsCustom    bool   `json:"is_custom"`
}

func (r *OpeningHoursResponse) FromModel(model model.OpeningHours) {
	r.Date = timezone.Format(model.Date, constant.CalendarDateFormat)
	r.Status = model.Status
	r.LunchStart = model.LunchStart
	r.LunchEnd = model.LunchEnd
	r.DinnerStart = model.DinnerStart
	r.DinnerEnd = model.DinnerEnd
	r.IsCustom = model.IsCustom
}
