package allocation

import (
	"time"

	reservationModel "tavolo/internal/domains/reservation/model"
)

// OccupiedTables reports which tables hold a confirmed reservation
// overlapping [start,end). It runs entirely on one prefetched batch of a
// date's confirmed bookings so a full-day scan never goes back to the
// store per candidate time.
func OccupiedTables(bookings []reservationModel.Reservation, start, end time.Time) map[string]struct{} {
	occupied := make(map[string]struct{})

	for i := range bookings {
		booking := &bookings[i]
		if booking.Status != reservationModel.StatusConfirmed {
			continue
		}

		if booking.Overlaps(start, end) {
			occupied[booking.TableID] = struct{}{}
		}
	}

	return occupied
}
