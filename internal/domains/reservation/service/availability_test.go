package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tavolo/config"
	hoursModel "tavolo/internal/domains/hours/model"
	hoursMocks "tavolo/internal/domains/hours/service/mocks"
	reservationMocks "tavolo/internal/domains/reservation/mocks"
	reservationModel "tavolo/internal/domains/reservation/model"
	"tavolo/internal/domains/reservation/service"
	tableMocks "tavolo/internal/domains/table/mocks"
	tableModel "tavolo/internal/domains/table/model"
	cacheMocks "tavolo/shared/cache/mocks"
	"tavolo/shared/constant"
	"tavolo/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func availabilityConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Reservation.TimeSlotsMode = constant.SlotModeInterval
	cfg.Reservation.SlotIntervalMinutes = 60
	cfg.Reservation.DurationMinutes = 90
	cfg.Reservation.SearchWindowDays = 7
	cfg.Reservation.PastRequestPolicy = constant.PastPolicyReject

	return cfg
}

func fullDayResolution() hoursModel.Resolution {
	return hoursModel.Resolution{
		Schedule: hoursModel.DaySchedule{
			Status: hoursModel.StatusFullDay,
			Lunch:  hoursModel.Window{Start: "12:00", End: "15:00"},
			Dinner: hoursModel.Window{Start: "19:00", End: "22:30"},
		},
		Source: hoursModel.SourceWeekly,
	}
}

func closedResolution() hoursModel.Resolution {
	return hoursModel.Resolution{
		Schedule: hoursModel.DaySchedule{Status: hoursModel.StatusClosed},
		Source:   hoursModel.SourceWeekly,
	}
}

func availableTable(number, capacity int) tableModel.Table {
	return tableModel.Table{
		ID:          "table-" + string(rune('0'+number)),
		TableNumber: number,
		Capacity:    capacity,
		Status:      tableModel.StatusAvailable,
	}
}

func TestCheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTables := tableMocks.NewMockTable(ctrl)
	mockHours := hoursMocks.NewMockHours(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.NewAvailability(mockRepo, mockTables, mockHours, availabilityConfig(), mockCache, mockOtel)

	date := "2030-06-15"
	day := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		date          string
		setupMock     func()
		wantAvailable bool
		wantSlots     int
		wantErr       bool
	}{
		{
			name: "open day with free tables",
			date: date,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockTables.EXPECT().
					ListAvailable(gomock.Any()).
					Return([]tableModel.Table{availableTable(1, 4)}, nil)
				mockHours.EXPECT().
					Resolve(gomock.Any(), day).
					Return(fullDayResolution())
				mockRepo.EXPECT().
					ListConfirmedByDate(gomock.Any(), day).
					Return(nil, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantAvailable: true,
			wantSlots:     8,
		},
		{
			name: "every slot blocked by one long booking",
			date: date,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockTables.EXPECT().
					ListAvailable(gomock.Any()).
					Return([]tableModel.Table{availableTable(1, 4)}, nil)
				mockHours.EXPECT().
					Resolve(gomock.Any(), day).
					Return(fullDayResolution())
				mockRepo.EXPECT().
					ListConfirmedByDate(gomock.Any(), day).
					Return([]reservationModel.Reservation{
						{
							TableID:   "table-1",
							Status:    reservationModel.StatusConfirmed,
							StartTime: day.Add(12 * time.Hour),
							EndTime:   day.Add(24 * time.Hour),
						},
					}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantAvailable: false,
			wantSlots:     8,
		},
		{
			name: "closed day",
			date: date,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockTables.EXPECT().
					ListAvailable(gomock.Any()).
					Return([]tableModel.Table{availableTable(1, 4)}, nil)
				mockHours.EXPECT().
					Resolve(gomock.Any(), day).
					Return(closedResolution())
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantAvailable: false,
			wantSlots:     0,
		},
		{
			name: "availability from cache",
			date: date,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantAvailable: false,
			wantSlots:     0,
		},
		{
			name:      "malformed date",
			date:      "15/06/2030",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "table list error",
			date: date,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockTables.EXPECT().
					ListAvailable(gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "reservation list error",
			date: date,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockTables.EXPECT().
					ListAvailable(gomock.Any()).
					Return([]tableModel.Table{availableTable(1, 4)}, nil)
				mockHours.EXPECT().
					Resolve(gomock.Any(), day).
					Return(fullDayResolution())
				mockRepo.EXPECT().
					ListConfirmedByDate(gomock.Any(), day).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CheckAvailability(context.Background(), tt.date, 4)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Len(t, res.Slots, tt.wantSlots)
		})
	}
}

func TestFindExactSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTables := tableMocks.NewMockTable(ctrl)
	mockHours := hoursMocks.NewMockHours(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.NewAvailability(mockRepo, mockTables, mockHours, availabilityConfig(), mockCache, mockOtel)

	date := "2030-06-15"
	day := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)

	openDay := func(bookings []reservationModel.Reservation) {
		mockTables.EXPECT().
			ListAvailable(gomock.Any()).
			Return([]tableModel.Table{availableTable(1, 4)}, nil)
		mockHours.EXPECT().
			Resolve(gomock.Any(), day).
			Return(fullDayResolution())
		mockRepo.EXPECT().
			ListConfirmedByDate(gomock.Any(), day).
			Return(bookings, nil)
	}

	tests := []struct {
		name         string
		clock        string
		setupMock    func()
		wantFeasible bool
		wantErr      bool
	}{
		{
			name:  "free slot",
			clock: "20:00",
			setupMock: func() {
				openDay(nil)
			},
			wantFeasible: true,
		},
		{
			name:  "occupied slot",
			clock: "20:00",
			setupMock: func() {
				openDay([]reservationModel.Reservation{
					{
						TableID:   "table-1",
						Status:    reservationModel.StatusConfirmed,
						StartTime: day.Add(19*time.Hour + 30*time.Minute),
						EndTime:   day.Add(21 * time.Hour),
					},
				})
			},
			wantFeasible: false,
		},
		{
			name:  "time off the slot grid",
			clock: "20:17",
			setupMock: func() {
				openDay(nil)
			},
			wantFeasible: false,
		},
		{
			name:      "malformed time",
			clock:     "late",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			feasible, err := svc.FindExactSlot(context.Background(), date, tt.clock, 4)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFeasible, feasible)
		})
	}
}

func TestFindNextAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTables := tableMocks.NewMockTable(ctrl)
	mockHours := hoursMocks.NewMockHours(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.NewAvailability(mockRepo, mockTables, mockHours, availabilityConfig(), mockCache, mockOtel)

	date := "2030-06-15"
	day := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	t.Run("requested slot itself is free", func(t *testing.T) {
		mockTables.EXPECT().
			ListAvailable(gomock.Any()).
			Return([]tableModel.Table{availableTable(1, 4)}, nil)
		mockHours.EXPECT().
			Resolve(gomock.Any(), day).
			Return(fullDayResolution())
		mockRepo.EXPECT().
			ListConfirmedByDate(gomock.Any(), day).
			Return(nil, nil)

		res, err := svc.FindNextAvailable(context.Background(), date, "19:00", 4)

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, date, res.Date)
		assert.Equal(t, "19:00", res.Time)
		assert.True(t, res.IsRequested)
	})

	t.Run("rolls to the next day when the requested day is closed", func(t *testing.T) {
		mockTables.EXPECT().
			ListAvailable(gomock.Any()).
			Return([]tableModel.Table{availableTable(1, 4)}, nil)
		mockHours.EXPECT().
			Resolve(gomock.Any(), day).
			Return(closedResolution())
		mockHours.EXPECT().
			Resolve(gomock.Any(), nextDay).
			Return(fullDayResolution())
		mockRepo.EXPECT().
			ListConfirmedByDate(gomock.Any(), nextDay).
			Return(nil, nil)

		res, err := svc.FindNextAvailable(context.Background(), date, "19:00", 4)

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "2030-06-16", res.Date)
		assert.Equal(t, "19:00", res.Time)
		assert.False(t, res.IsRequested)
	})

	t.Run("later days never suggest earlier than the requested time", func(t *testing.T) {
		// The whole dinner window of the requested day is taken; the lunch
		// slots of the next day fall before 19:00 and are skipped.
		mockTables.EXPECT().
			ListAvailable(gomock.Any()).
			Return([]tableModel.Table{availableTable(1, 4)}, nil)
		mockHours.EXPECT().
			Resolve(gomock.Any(), day).
			Return(fullDayResolution())
		mockRepo.EXPECT().
			ListConfirmedByDate(gomock.Any(), day).
			Return([]reservationModel.Reservation{
				{
					TableID:   "table-1",
					Status:    reservationModel.StatusConfirmed,
					StartTime: day.Add(19 * time.Hour),
					EndTime:   day.Add(23 * time.Hour),
				},
			}, nil)
		mockHours.EXPECT().
			Resolve(gomock.Any(), nextDay).
			Return(fullDayResolution())
		mockRepo.EXPECT().
			ListConfirmedByDate(gomock.Any(), nextDay).
			Return(nil, nil)

		res, err := svc.FindNextAvailable(context.Background(), date, "19:00", 4)

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "2030-06-16", res.Date)
		assert.Equal(t, "19:00", res.Time)
		assert.False(t, res.IsRequested)
	})

	t.Run("nothing inside the search window", func(t *testing.T) {
		mockTables.EXPECT().
			ListAvailable(gomock.Any()).
			Return([]tableModel.Table{availableTable(1, 4)}, nil)
		mockHours.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return(closedResolution()).
			Times(8)

		res, err := svc.FindNextAvailable(context.Background(), date, "19:00", 4)

		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("past request is rejected", func(t *testing.T) {
		res, err := svc.FindNextAvailable(context.Background(), "2020-01-01", "19:00", 4)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestFindNextAvailable_PastShiftsForward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTables := tableMocks.NewMockTable(ctrl)
	mockHours := hoursMocks.NewMockHours(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := availabilityConfig()
	cfg.Reservation.PastRequestPolicy = constant.PastPolicyShiftForward

	svc := service.NewAvailability(mockRepo, mockTables, mockHours, cfg, mockCache, mockOtel)

	mockTables.EXPECT().
		ListAvailable(gomock.Any()).
		Return([]tableModel.Table{availableTable(1, 4)}, nil)
	mockHours.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(fullDayResolution()).
		AnyTimes()
	mockRepo.EXPECT().
		ListConfirmedByDate(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	res, err := svc.FindNextAvailable(context.Background(), "2020-01-01", "19:00", 4)

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.IsRequested)
}
