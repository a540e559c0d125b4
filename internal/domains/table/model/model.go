package model

import (
	"tavolo/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "tables"
	EntityName = "table"

	FieldID          = "id"
	FieldTableNumber = "table_number"
	FieldCapacity    = "capacity"
	FieldStatus      = "status"
	FieldPairing     = "pairing"
)

const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

// Table is a physical seating unit. Pairing lists the table numbers this
// table may be combined with to seat a larger party; a booking against a
// combination locks every member table.
type Table struct {
	ID          string        `db:"id"`
	TableNumber int           `db:"table_number"`
	Capacity    int           `db:"capacity"`
	Status      string        `db:"status"`
	Pairing     pq.Int64Array `db:"pairing"`
	model.Metadata
}

func (t *Table) IsPaired() bool {
	return len(t.Pairing) > 0
}
