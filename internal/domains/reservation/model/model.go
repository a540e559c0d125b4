package model

import (
	"time"

	"tavolo/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID             = "id"
	FieldPhone          = "phone"
	FieldClientName     = "client_name"
	FieldDate           = "date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldNumPeople      = "num_people"
	FieldTableID        = "table_id"
	FieldStatus         = "status"
	FieldBookingGroupID = "booking_group_id"
	FieldNotes          = "notes"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusNoShow    = "no_show"
)

// Reservation is one table's share of a party's booking. A party seated on
// a table combination owns several rows, all carrying the same
// BookingGroupID; the group is cancelled and modified as a unit. NumPeople
// is the full party size on every row of the group.
type Reservation struct {
	ID             string    `db:"id"`
	Phone          string    `db:"phone"`
	ClientName     string    `db:"client_name"`
	Date           time.Time `db:"date"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	NumPeople      int       `db:"num_people"`
	TableID        string    `db:"table_id"`
	Status         string    `db:"status"`
	BookingGroupID string    `db:"booking_group_id"`
	Notes          string    `db:"notes"`
	model.Metadata
}

// Overlaps reports whether the reservation's [start,end) interval overlaps
// the given one. Touching endpoints do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && start.Before(r.EndTime)
}
