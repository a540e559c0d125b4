package dto

import (
	"strconv"
	"time"

	"tavolo/internal/domains/reservation/model"
	"tavolo/shared"
	"tavolo/shared/constant"
	gDto "tavolo/shared/dto"
	"tavolo/shared/failure"
	"tavolo/shared/timezone"
)

// NextAvailableQuery carries the raw query string of a next-available
// lookup before parsing.
type NextAvailableQuery struct {
	Date      string
	Time      string
	PartySize string
}

func (q *NextAvailableQuery) Parse() (date, clock string, partySize int, err error) {
	if q.Date == "" || q.Time == "" {
		return "", "", 0, failure.BadRequestFromString("date and time query parameters are required") // nolint:wrapcheck
	}

	partySize, err = strconv.Atoi(q.PartySize)
	if err != nil || partySize < 1 {
		return "", "", 0, failure.BadRequestFromString("party_size must be a positive integer") // nolint:wrapcheck
	}

	return q.Date, q.Time, partySize, nil
}

type CheckAvailabilityRequest struct {
	Date      string `json:"date"       validate:"required,len=10"`
	PartySize int    `json:"party_size" validate:"required,gte=1"`
}

type SlotAvailabilityResponse struct {
	Time      string `json:"time"`
	Period    string `json:"period"`
	Available bool   `json:"available"`
}

type DayAvailabilityResponse struct {
	Date      string                     `json:"date"`
	Available bool                       `json:"available"`
	Slots     []SlotAvailabilityResponse `json:"slots"`
}

// SlotSuggestion is the nearest feasible alternative to an infeasible
// request. IsRequested is true only when the suggestion is exactly the
// originally requested date and time.
type SlotSuggestion struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsRequested bool   `json:"is_requested"`
}

type CreateReservationRequest struct {
	Phone      string `json:"phone"       validate:"required,max=20"`
	ClientName string `json:"client_name" validate:"required,max=100"`
	Date       string `json:"date"        validate:"required,len=10"`
	Time       string `json:"time"        validate:"required,len=5"`
	NumPeople  int    `json:"num_people"  validate:"required,gte=1"`
	Notes      string `json:"notes"       validate:"omitempty,max=500"`
}

func (c *CreateReservationRequest) ParseDate() (time.Time, error) {
	return timezone.Parse(constant.CalendarDateFormat, c.Date)
}

type BookingResponse struct {
	BookingGroupID string `json:"booking_group_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	NumPeople      int    `json:"num_people"`
	TableNumbers   []int  `json:"table_numbers"`
	TotalCapacity  int    `json:"total_capacity"`
}

// CreateReservationResponse is the combined create-with-alternatives
// outcome: either Booking is set, or Alternative carries the nearest
// feasible slot (nil when the whole search horizon is booked out).
type CreateReservationResponse struct {
	Created     bool             `json:"created"`
	Booking     *BookingResponse `json:"booking,omitempty"`
	Alternative *SlotSuggestion  `json:"alternative,omitempty"`
}

type ModifyReservationRequest struct {
	Date      string `json:"date"       validate:"omitempty,len=10"`
	Time      string `json:"time"       validate:"omitempty,len=5"`
	NumPeople int    `json:"num_people" validate:"omitempty,gte=1"`
	Notes     string `json:"notes"      validate:"omitempty,max=500"`
}

type ReservationResponse struct {
	ID             string `json:"id"`
	Phone          string `json:"phone"`
	ClientName     string `json:"client_name"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	NumPeople      int    `json:"num_people"`
	TableID        string `json:"table_id"`
	Status         string `json:"status"`
	BookingGroupID string `json:"booking_group_id"`
	Notes          string `json:"notes"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Phone = model.Phone
	r.ClientName = model.ClientName
	r.Date = timezone.Format(model.Date, constant.CalendarDateFormat)
	r.StartTime = timezone.Format(model.StartTime, constant.ClockFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.ClockFormat)
	r.NumPeople = model.NumPeople
	r.TableID = model.TableID
	r.Status = model.Status
	r.BookingGroupID = model.BookingGroupID
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
