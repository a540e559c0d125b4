package allocation

import (
	hoursModel "tavolo/internal/domains/hours/model"
	"tavolo/shared/constant"
)

// Slot is a candidate reservation start time inside one service period.
type Slot struct {
	Time   TimeOfDay
	Period string
}

// SlotConfig selects between the two enumeration modes. In fixed mode only
// the configured canonical times are emitted; in interval mode times are
// generated every IntervalMinutes inside each window.
type SlotConfig struct {
	Mode            string
	IntervalMinutes int
	FixedLunch      []TimeOfDay
	FixedDinner     []TimeOfDay
}

// Enumerate produces the ordered candidate start times for one date's
// resolved schedule. notBefore trims the front of the sequence: in interval
// mode generation starts at the later of the window start and notBefore,
// rounded up to the next interval multiple; in fixed mode earlier canonical
// times are skipped. Times at or before "now" are the caller's concern.
func Enumerate(schedule hoursModel.DaySchedule, cfg SlotConfig, notBefore TimeOfDay) []Slot {
	if schedule.Closed() {
		return nil
	}

	var slots []Slot

	if schedule.HasLunch() {
		slots = append(slots, enumerateWindow(schedule.Lunch, constant.PeriodLunch, cfg, notBefore)...)
	}

	if schedule.HasDinner() {
		slots = append(slots, enumerateWindow(schedule.Dinner, constant.PeriodDinner, cfg, notBefore)...)
	}

	return slots
}

func enumerateWindow(window hoursModel.Window, period string, cfg SlotConfig, notBefore TimeOfDay) []Slot {
	start, err := ParseClock(window.Start)
	if err != nil {
		return nil
	}

	end, err := ParseClock(window.End)
	if err != nil {
		return nil
	}

	if cfg.Mode == constant.SlotModeFixed {
		fixed := cfg.FixedLunch
		if period == constant.PeriodDinner {
			fixed = cfg.FixedDinner
		}

		var slots []Slot

		for _, t := range fixed {
			if t < start || t > end || t < notBefore {
				continue
			}

			slots = append(slots, Slot{Time: t, Period: period})
		}

		return slots
	}

	step := TimeOfDay(cfg.IntervalMinutes)
	if step <= 0 {
		return nil
	}

	first := max(start, notBefore)
	// Round up to the next interval multiple.
	first = ((first + step - 1) / step) * step

	var slots []Slot

	for t := first; t <= end; t += step {
		slots = append(slots, Slot{Time: t, Period: period})
	}

	return slots
}
