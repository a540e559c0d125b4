package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"tavolo/config"
	eventMocks "tavolo/internal/domains/reservation/event/mocks"
	reservationMocks "tavolo/internal/domains/reservation/mocks"
	reservationModel "tavolo/internal/domains/reservation/model"
	"tavolo/internal/domains/reservation/model/dto"
	"tavolo/internal/domains/reservation/service"
	serviceMocks "tavolo/internal/domains/reservation/service/mocks"
	tableMocks "tavolo/internal/domains/table/mocks"
	cacheMocks "tavolo/shared/cache/mocks"
	"tavolo/shared/constant"
	gDto "tavolo/shared/dto"
	"tavolo/shared/failure"
	"tavolo/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	repo         *reservationMocks.MockReservation
	tables       *tableMocks.MockTable
	availability *serviceMocks.MockAvailability
	publisher    *eventMocks.MockPublisher
	cache        *cacheMocks.MockRedisCache
	svc          service.Booking
}

func newBookingFixture(ctrl *gomock.Controller, cfg *config.Config) bookingFixture {
	f := bookingFixture{
		repo:         reservationMocks.NewMockReservation(ctrl),
		tables:       tableMocks.NewMockTable(ctrl),
		availability: serviceMocks.NewMockAvailability(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.NewBooking(f.repo, f.tables, f.availability, f.publisher, cfg, f.cache, mocks.NewOtel())

	return f
}

func bookingConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Reservation.TimeSlotsMode = constant.SlotModeInterval
	cfg.Reservation.SlotIntervalMinutes = 60
	cfg.Reservation.DurationMinutes = 90
	cfg.Reservation.SearchWindowDays = 7
	cfg.Reservation.MaxPartySize = 8
	cfg.Reservation.PastRequestPolicy = constant.PastPolicyReject

	return cfg
}

func confirmedReservation() reservationModel.Reservation {
	day := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC)

	return reservationModel.Reservation{
		ID:             "reservation-1",
		Phone:          "+31612345678",
		ClientName:     "Ada",
		Date:           day,
		StartTime:      day.Add(19 * time.Hour),
		EndTime:        day.Add(20*time.Hour + 30*time.Minute),
		NumPeople:      4,
		TableID:        "table-1",
		Status:         reservationModel.StatusConfirmed,
		BookingGroupID: "group-1",
	}
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, bookingConfig())

	req := dto.CreateReservationRequest{
		Phone:      "+31612345678",
		ClientName: "Ada",
		Date:       "2030-06-15",
		Time:       "19:00",
		NumPeople:  4,
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "party size over the maximum",
			req: dto.CreateReservationRequest{
				Phone:     "+31612345678",
				Date:      "2030-06-15",
				Time:      "19:00",
				NumPeople: 9,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed date",
			req: dto.CreateReservationRequest{
				Phone:     "+31612345678",
				Date:      "15 June",
				Time:      "19:00",
				NumPeople: 4,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed time",
			req: dto.CreateReservationRequest{
				Phone:     "+31612345678",
				Date:      "2030-06-15",
				Time:      "evening",
				NumPeople: 4,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "past request is rejected",
			req: dto.CreateReservationRequest{
				Phone:     "+31612345678",
				Date:      "2020-01-01",
				Time:      "19:00",
				NumPeople: 4,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "feasibility check error",
			req:  req,
			setupMock: func() {
				f.availability.EXPECT().
					FindExactSlot(gomock.Any(), req.Date, req.Time, req.NumPeople).
					Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreate_InfeasibleSlotAnswersWithAlternative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, bookingConfig())

	req := dto.CreateReservationRequest{
		Phone:      "+31612345678",
		ClientName: "Ada",
		Date:       "2030-06-15",
		Time:       "19:00",
		NumPeople:  4,
	}

	suggestion := &dto.SlotSuggestion{Date: "2030-06-15", Time: "20:00"}

	f.availability.EXPECT().
		FindExactSlot(gomock.Any(), req.Date, req.Time, req.NumPeople).
		Return(false, nil)
	f.availability.EXPECT().
		FindNextAvailable(gomock.Any(), req.Date, req.Time, req.NumPeople).
		Return(suggestion, nil)

	res, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Nil(t, res.Booking)
	assert.Equal(t, suggestion, res.Alternative)
}

func TestCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, bookingConfig())

	reservation := confirmedReservation()

	tests := []struct {
		name      string
		phone     string
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "success cancels the whole group",
			phone: reservation.Phone,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
				f.repo.EXPECT().
					UpdateGroupStatus(gomock.Any(), reservation.BookingGroupID, reservationModel.StatusCancelled, reservation.Phone).
					Return(int64(2), nil)
				f.publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any())
				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:  "phone mismatch",
			phone: "+31600000000",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
			wantErr: true,
		},
		{
			name:  "already cancelled",
			phone: reservation.Phone,
			setupMock: func() {
				cancelled := reservation
				cancelled.Status = reservationModel.StatusCancelled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name:  "group vanished before the update",
			phone: reservation.Phone,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
				f.repo.EXPECT().
					UpdateGroupStatus(gomock.Any(), reservation.BookingGroupID, reservationModel.StatusCancelled, reservation.Phone).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
		{
			name:  "lookup error",
			phone: reservation.Phone,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservationModel.Reservation{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Cancel(context.Background(), reservation.ID, tt.phone)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestModify_GuardPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, bookingConfig())

	reservation := confirmedReservation()

	tests := []struct {
		name      string
		phone     string
		req       dto.ModifyReservationRequest
		setupMock func()
	}{
		{
			name:  "lookup error",
			phone: reservation.Phone,
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservationModel.Reservation{}, errors.New("db error"))
			},
		},
		{
			name:  "phone mismatch",
			phone: "+31600000000",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
		},
		{
			name:  "inactive reservation",
			phone: reservation.Phone,
			setupMock: func() {
				done := reservation
				done.Status = reservationModel.StatusCompleted

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(done, nil)
			},
		},
		{
			name:  "malformed new date",
			phone: reservation.Phone,
			req:   dto.ModifyReservationRequest{Date: "soon"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
		},
		{
			name:  "new party size over the maximum",
			phone: reservation.Phone,
			req:   dto.ModifyReservationRequest{NumPeople: 9},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
		},
		{
			name:  "move into the past is rejected",
			phone: reservation.Phone,
			req:   dto.ModifyReservationRequest{Date: "2020-01-01"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Modify(context.Background(), reservation.ID, tt.phone, tt.req)

			assert.Error(t, err)
		})
	}
}

func TestBooking_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, bookingConfig())

	t.Run("get answers not found", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservationModel.Reservation{}, nil)

		_, err := f.svc.Get(context.Background(), "does-not-exist")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cancel answers not found before the phone check", func(t *testing.T) {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservationModel.Reservation{}, nil)

		err := f.svc.Cancel(context.Background(), "does-not-exist", "+31612345678")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("modify answers not found before the phone check", func(t *testing.T) {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservationModel.Reservation{}, nil)

		_, err := f.svc.Modify(context.Background(), "does-not-exist", "+31612345678", dto.ModifyReservationRequest{})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGetReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, bookingConfig())

	reservation := confirmedReservation()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "resolve from cache",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss reads the store",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "store error",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservationModel.Reservation{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Get(context.Background(), reservation.ID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetAllReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl, bookingConfig())

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)
				f.repo.EXPECT().
					GetAll(gomock.Any(), params, filter).
					Return([]reservationModel.Reservation{confirmedReservation()}, nil)
				f.repo.EXPECT().
					Count(gomock.Any(), filter).
					Return(1, nil)
				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "list error",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				f.repo.EXPECT().
					GetAll(gomock.Any(), params, filter).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "count error",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)
				f.repo.EXPECT().
					GetAll(gomock.Any(), params, filter).
					Return([]reservationModel.Reservation{confirmedReservation()}, nil)
				f.repo.EXPECT().
					Count(gomock.Any(), filter).
					Return(0, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.GetAll(context.Background(), params, filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
