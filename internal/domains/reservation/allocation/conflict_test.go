package allocation_test

import (
	"testing"
	"time"

	"tavolo/internal/domains/reservation/allocation"
	reservationModel "tavolo/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func booking(tableID, status string, start, end time.Time) reservationModel.Reservation {
	return reservationModel.Reservation{
		TableID:   tableID,
		Status:    status,
		StartTime: start,
		EndTime:   end,
	}
}

func TestOccupiedTables(t *testing.T) {
	base := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	bookings := []reservationModel.Reservation{
		booking("t-1", reservationModel.StatusConfirmed, at(12, 0), at(14, 0)),
		booking("t-2", reservationModel.StatusConfirmed, at(13, 0), at(15, 0)),
		booking("t-3", reservationModel.StatusCancelled, at(12, 0), at(14, 0)),
		booking("t-4", reservationModel.StatusCompleted, at(12, 0), at(14, 0)),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{
			name:  "interval inside both confirmed bookings",
			start: at(13, 0),
			end:   at(13, 30),
			want:  []string{"t-1", "t-2"},
		},
		{
			name:  "interval touching an end is free",
			start: at(14, 0),
			end:   at(16, 0),
			want:  []string{"t-2"},
		},
		{
			name:  "interval touching a start is free",
			start: at(10, 0),
			end:   at(12, 0),
			want:  nil,
		},
		{
			name:  "interval overlapping only the first",
			start: at(11, 30),
			end:   at(12, 30),
			want:  []string{"t-1"},
		},
		{
			name:  "disjoint interval",
			start: at(18, 0),
			end:   at(20, 0),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupied := allocation.OccupiedTables(bookings, tt.start, tt.end)

			assert.Len(t, occupied, len(tt.want))
			for _, id := range tt.want {
				assert.Contains(t, occupied, id)
			}
		})
	}
}

func TestOccupiedTables_IgnoresNonConfirmed(t *testing.T) {
	base := time.Date(2026, time.September, 12, 12, 0, 0, 0, time.UTC)

	bookings := []reservationModel.Reservation{
		booking("t-1", reservationModel.StatusCancelled, base, base.Add(2*time.Hour)),
		booking("t-2", reservationModel.StatusNoShow, base, base.Add(2*time.Hour)),
	}

	occupied := allocation.OccupiedTables(bookings, base, base.Add(time.Hour))

	assert.Empty(t, occupied)
}
