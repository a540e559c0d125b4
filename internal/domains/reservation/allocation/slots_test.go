package allocation_test

import (
	"testing"

	hoursModel "tavolo/internal/domains/hours/model"
	"tavolo/internal/domains/reservation/allocation"
	"tavolo/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, value string) allocation.TimeOfDay {
	t.Helper()

	clock, err := allocation.ParseClock(value)
	require.NoError(t, err)

	return clock
}

func fullDaySchedule() hoursModel.DaySchedule {
	return hoursModel.DaySchedule{
		Status: hoursModel.StatusFullDay,
		Lunch:  hoursModel.Window{Start: "12:00", End: "15:00"},
		Dinner: hoursModel.Window{Start: "19:00", End: "22:30"},
	}
}

func intervalConfig(minutes int) allocation.SlotConfig {
	return allocation.SlotConfig{
		Mode:            constant.SlotModeInterval,
		IntervalMinutes: minutes,
	}
}

func times(slots []allocation.Slot) []string {
	var out []string
	for _, s := range slots {
		out = append(out, s.Time.Clock())
	}

	return out
}

func TestEnumerate_IntervalMode(t *testing.T) {
	tests := []struct {
		name      string
		schedule  hoursModel.DaySchedule
		interval  int
		notBefore string
		want      []string
	}{
		{
			name:     "full day every half hour",
			schedule: fullDaySchedule(),
			interval: 30,
			want: []string{
				"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00",
				"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00", "22:30",
			},
		},
		{
			name:     "hourly",
			schedule: fullDaySchedule(),
			interval: 60,
			want:     []string{"12:00", "13:00", "14:00", "15:00", "19:00", "20:00", "21:00", "22:00"},
		},
		{
			name:      "not-before trims and rounds up to the next multiple",
			schedule:  fullDaySchedule(),
			interval:  30,
			notBefore: "13:10",
			want: []string{
				"13:30", "14:00", "14:30", "15:00",
				"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00", "22:30",
			},
		},
		{
			name: "lunch only",
			schedule: hoursModel.DaySchedule{
				Status: hoursModel.StatusLunchOnly,
				Lunch:  hoursModel.Window{Start: "12:00", End: "14:00"},
			},
			interval: 60,
			want:     []string{"12:00", "13:00", "14:00"},
		},
		{
			name: "window start not on the grid rounds up",
			schedule: hoursModel.DaySchedule{
				Status: hoursModel.StatusDinnerOnly,
				Dinner: hoursModel.Window{Start: "19:15", End: "21:00"},
			},
			interval: 30,
			want:     []string{"19:30", "20:00", "20:30", "21:00"},
		},
		{
			name:     "closed day yields nothing",
			schedule: hoursModel.DaySchedule{Status: hoursModel.StatusClosed},
			interval: 30,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notBefore allocation.TimeOfDay
			if tt.notBefore != "" {
				notBefore = mustClock(t, tt.notBefore)
			}

			slots := allocation.Enumerate(tt.schedule, intervalConfig(tt.interval), notBefore)

			assert.Equal(t, tt.want, times(slots))
		})
	}
}

func TestEnumerate_FixedMode(t *testing.T) {
	cfg := allocation.SlotConfig{
		Mode:        constant.SlotModeFixed,
		FixedLunch:  []allocation.TimeOfDay{mustClock(t, "13:00"), mustClock(t, "15:00")},
		FixedDinner: []allocation.TimeOfDay{mustClock(t, "20:00"), mustClock(t, "22:00")},
	}

	t.Run("canonical times inside the windows", func(t *testing.T) {
		slots := allocation.Enumerate(fullDaySchedule(), cfg, 0)

		assert.Equal(t, []string{"13:00", "15:00", "20:00", "22:00"}, times(slots))
	})

	t.Run("times outside the window are dropped", func(t *testing.T) {
		schedule := hoursModel.DaySchedule{
			Status: hoursModel.StatusFullDay,
			Lunch:  hoursModel.Window{Start: "12:00", End: "14:00"},
			Dinner: hoursModel.Window{Start: "19:00", End: "21:00"},
		}

		slots := allocation.Enumerate(schedule, cfg, 0)

		assert.Equal(t, []string{"13:00", "20:00"}, times(slots))
	})

	t.Run("not-before skips earlier canonical times", func(t *testing.T) {
		slots := allocation.Enumerate(fullDaySchedule(), cfg, mustClock(t, "14:00"))

		assert.Equal(t, []string{"15:00", "20:00", "22:00"}, times(slots))
	})

	t.Run("periods are tagged", func(t *testing.T) {
		slots := allocation.Enumerate(fullDaySchedule(), cfg, 0)

		require.Len(t, slots, 4)
		assert.Equal(t, constant.PeriodLunch, slots[0].Period)
		assert.Equal(t, constant.PeriodDinner, slots[2].Period)
	})
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "afternoon", value: "13:30", want: 13*60 + 30},
		{name: "end of day", value: "23:59", want: 23*60 + 59},
		{name: "single digit hour", value: "9:30", want: 9*60 + 30},
		{name: "out of range", value: "25:00", wantErr: true},
		{name: "trailing seconds", value: "12:00:00", wantErr: true},
		{name: "garbage", value: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, err := allocation.ParseClock(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, int(clock))
			}
		})
	}
}

func TestTimeOfDay_Clock(t *testing.T) {
	assert.Equal(t, "09:05", allocation.TimeOfDay(9*60+5).Clock())
	assert.Equal(t, "22:30", allocation.TimeOfDay(22*60+30).Clock())
}
