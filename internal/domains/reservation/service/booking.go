package service

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=./mocks/booking_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tavolo/config"
	"tavolo/infras/otel"
	"tavolo/internal/domains/reservation/allocation"
	"tavolo/internal/domains/reservation/event"
	"tavolo/internal/domains/reservation/model"
	"tavolo/internal/domains/reservation/model/dto"
	"tavolo/internal/domains/reservation/repository"
	tableModel "tavolo/internal/domains/table/model"
	tableRepo "tavolo/internal/domains/table/repository"
	"tavolo/shared"
	"tavolo/shared/cache"
	"tavolo/shared/constant"
	gDto "tavolo/shared/dto"
	"tavolo/shared/failure"
	sharedModel "tavolo/shared/model"
	"tavolo/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation     = "reservation:get"
	cacheGetAllReservations = "reservation:gets"
	cacheCountReservations  = "reservation:count"
)

type Booking interface {
	// Create books the requested slot when it is feasible, or answers with
	// the nearest feasible alternative when it is not. The final claim runs
	// inside a transaction re-validated against the live calendar; losing
	// that race is a conflict, not a quiet alternative.
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	// Cancel flips every row of the reservation's booking group. The phone
	// must match the one the group was booked under.
	Cancel(ctx context.Context, id, phone string) error
	// Modify rebooks the group on a new date, time or party size, keeping
	// its booking group id. Table assignment is recomputed from scratch.
	Modify(ctx context.Context, id, phone string, req dto.ModifyReservationRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type bookingImpl struct {
	repo         repository.Reservation
	tables       tableRepo.Table
	availability Availability
	publisher    event.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func NewBooking(
	repo repository.Reservation,
	tables tableRepo.Table,
	availability Availability,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &bookingImpl{
		repo:         repo,
		tables:       tables,
		availability: availability,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *bookingImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.NumPeople > s.cfg.Reservation.MaxPartySize {
		return res, failure.BadRequestFromString(fmt.Sprintf("party size %d exceeds the maximum of %d", req.NumPeople, s.cfg.Reservation.MaxPartySize)) // nolint:wrapcheck
	}

	day, err := req.ParseDate()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date)) // nolint:wrapcheck
	}

	clock, err := allocation.ParseClock(req.Time)
	if err != nil {
		return res, err
	}

	instant, err := clampToFuture(s.cfg.Reservation.PastRequestPolicy, clock.At(day))
	if err != nil {
		return res, err
	}

	date := timezone.Format(startOfDay(instant), constant.CalendarDateFormat)
	clockValue := allocation.ClockOf(instant).Clock()

	feasible, err := s.availability.FindExactSlot(ctx, date, clockValue, req.NumPeople)
	if err != nil {
		return res, err
	}

	if !feasible {
		alternative, err := s.availability.FindNextAvailable(ctx, date, clockValue, req.NumPeople)
		if err != nil {
			return res, err
		}

		return dto.CreateReservationResponse{
			Created:     false,
			Alternative: alternative,
		}, nil
	}

	booking, err := s.claim(ctx, req, startOfDay(instant), allocation.ClockOf(instant))
	if err != nil {
		return res, err
	}

	s.publisher.Publish(ctx, event.ReservationEvent{
		Type:           event.TypeCreated,
		BookingGroupID: booking.BookingGroupID,
		Phone:          req.Phone,
		Date:           booking.Date,
		Time:           booking.Time,
		NumPeople:      booking.NumPeople,
		TableNumbers:   booking.TableNumbers,
	})

	s.invalidate(ctx)

	return dto.CreateReservationResponse{
		Created: true,
		Booking: &booking,
	}, nil
}

// claim performs the write-time re-validation: inside one transaction it
// re-reads the date's confirmed bookings, recomputes the table assignment
// and inserts the group. A proposal invalidated by a concurrent commit
// surfaces as a conflict.
func (s *bookingImpl) claim(ctx context.Context, req dto.CreateReservationRequest, day time.Time, clock allocation.TimeOfDay) (res dto.BookingResponse, err error) {
	tables, err := s.tables.ListAvailable(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list tables: %w", err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, err
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback reservation transaction")
			}
		}
	}()

	bookings, err := s.repo.ListConfirmedByDateTx(ctx, tx, day)
	if err != nil {
		return res, err
	}

	start := clock.At(day)
	end := start.Add(time.Duration(s.cfg.Reservation.DurationMinutes) * time.Minute)

	occupied := allocation.OccupiedTables(bookings, start, end)

	free := make([]tableModel.Table, 0, len(tables))
	for _, t := range tables {
		if _, taken := occupied[t.ID]; !taken {
			free = append(free, t)
		}
	}

	assignment, feasible := allocation.SelectTables(free, req.NumPeople)
	if !feasible {
		return res, failure.Conflict("the requested slot was taken by a concurrent booking") // nolint:wrapcheck
	}

	groupID := uuid.New().String()
	now := timezone.Now()

	rows := make([]model.Reservation, len(assignment.Tables))
	for i, t := range assignment.Tables {
		rows[i] = model.Reservation{
			ID:             uuid.New().String(),
			Phone:          req.Phone,
			ClientName:     req.ClientName,
			Date:           day,
			StartTime:      start,
			EndTime:        end,
			NumPeople:      req.NumPeople,
			TableID:        t.ID,
			Status:         model.StatusConfirmed,
			BookingGroupID: groupID,
			Notes:          req.Notes,
			Metadata: sharedModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  req.Phone,
				ModifiedBy: req.Phone,
			},
		}
	}

	if err = s.repo.InsertGroupTx(ctx, tx, rows); err != nil {
		return res, err
	}

	if err = tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit reservation transaction: %w", err)
	}

	return bookingResponse(groupID, day, clock, req.NumPeople, assignment), nil
}

func (s *bookingImpl) Cancel(ctx context.Context, id, phone string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if reservation.Phone != phone {
		return failure.Unauthorized("phone does not match the reservation") // nolint:wrapcheck
	}

	if reservation.Status != model.StatusConfirmed {
		return failure.Conflict("reservation is no longer active") // nolint:wrapcheck
	}

	affected, err := s.repo.UpdateGroupStatus(ctx, reservation.BookingGroupID, model.StatusCancelled, phone)
	if err != nil {
		return err
	}

	if affected == 0 {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	s.publisher.Publish(ctx, event.ReservationEvent{
		Type:           event.TypeCancelled,
		BookingGroupID: reservation.BookingGroupID,
		Phone:          phone,
		Date:           timezone.Format(reservation.Date, constant.CalendarDateFormat),
		Time:           timezone.Format(reservation.StartTime, constant.ClockFormat),
		NumPeople:      reservation.NumPeople,
	})

	s.invalidate(ctx)

	return nil
}

func (s *bookingImpl) Modify(ctx context.Context, id, phone string, req dto.ModifyReservationRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Modify")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if reservation.Phone != phone {
		return res, failure.Unauthorized("phone does not match the reservation") // nolint:wrapcheck
	}

	if reservation.Status != model.StatusConfirmed {
		return res, failure.Conflict("reservation is no longer active") // nolint:wrapcheck
	}

	day := startOfDay(reservation.Date)
	clock := allocation.ClockOf(reservation.StartTime)
	numPeople := reservation.NumPeople
	notes := reservation.Notes

	if req.Date != "" {
		day, err = timezone.Parse(constant.CalendarDateFormat, req.Date)
		if err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date)) // nolint:wrapcheck
		}
	}

	if req.Time != "" {
		clock, err = allocation.ParseClock(req.Time)
		if err != nil {
			return res, err
		}
	}

	if req.NumPeople > 0 {
		numPeople = req.NumPeople
	}

	if req.Notes != "" {
		notes = req.Notes
	}

	if numPeople > s.cfg.Reservation.MaxPartySize {
		return res, failure.BadRequestFromString(fmt.Sprintf("party size %d exceeds the maximum of %d", numPeople, s.cfg.Reservation.MaxPartySize)) // nolint:wrapcheck
	}

	instant, err := clampToFuture(s.cfg.Reservation.PastRequestPolicy, clock.At(day))
	if err != nil {
		return res, err
	}

	day = startOfDay(instant)
	clock = allocation.ClockOf(instant)

	res, err = s.rebook(ctx, reservation, day, clock, numPeople, notes, phone)
	if err != nil {
		return res, err
	}

	s.publisher.Publish(ctx, event.ReservationEvent{
		Type:           event.TypeModified,
		BookingGroupID: reservation.BookingGroupID,
		Phone:          phone,
		Date:           res.Date,
		Time:           res.Time,
		NumPeople:      res.NumPeople,
		TableNumbers:   res.TableNumbers,
	})

	s.invalidate(ctx)

	return res, nil
}

// rebook replaces the group's rows inside one transaction. The group's own
// rows are excluded from the occupancy check, so a party can keep (part of)
// its current tables when shrinking or shifting within the same slot.
func (s *bookingImpl) rebook(ctx context.Context, current model.Reservation, day time.Time, clock allocation.TimeOfDay, numPeople int, notes, actor string) (res dto.BookingResponse, err error) {
	tables, err := s.tables.ListAvailable(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list tables: %w", err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, err
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback reservation transaction")
			}
		}
	}()

	bookings, err := s.repo.ListConfirmedByDateTx(ctx, tx, day)
	if err != nil {
		return res, err
	}

	others := make([]model.Reservation, 0, len(bookings))
	for _, booking := range bookings {
		if booking.BookingGroupID != current.BookingGroupID {
			others = append(others, booking)
		}
	}

	start := clock.At(day)
	end := start.Add(time.Duration(s.cfg.Reservation.DurationMinutes) * time.Minute)

	occupied := allocation.OccupiedTables(others, start, end)

	free := make([]tableModel.Table, 0, len(tables))
	for _, t := range tables {
		if _, taken := occupied[t.ID]; !taken {
			free = append(free, t)
		}
	}

	assignment, feasible := allocation.SelectTables(free, numPeople)
	if !feasible {
		return res, failure.Conflict("no tables are available for the requested change") // nolint:wrapcheck
	}

	err = s.repo.DeleteGroupTx(ctx, tx, current.BookingGroupID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	rows := make([]model.Reservation, len(assignment.Tables))
	for i, t := range assignment.Tables {
		rows[i] = model.Reservation{
			ID:             uuid.New().String(),
			Phone:          current.Phone,
			ClientName:     current.ClientName,
			Date:           day,
			StartTime:      start,
			EndTime:        end,
			NumPeople:      numPeople,
			TableID:        t.ID,
			Status:         model.StatusConfirmed,
			BookingGroupID: current.BookingGroupID,
			Notes:          notes,
			Metadata: sharedModel.Metadata{
				CreatedAt:  current.CreatedAt,
				ModifiedAt: now,
				CreatedBy:  current.CreatedBy,
				ModifiedBy: actor,
			},
		}
	}

	if err = s.repo.InsertGroupTx(ctx, tx, rows); err != nil {
		return res, err
	}

	if err = tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit reservation transaction: %w", err)
	}

	return bookingResponse(current.BookingGroupID, day, clock, numPeople, assignment), nil
}

func (s *bookingImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *bookingImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservations, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	reservations, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, err
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(reservations, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *bookingImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservations, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *bookingImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetReservation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllReservations)
		shared.InvalidateCaches(c, s.cache, cacheCountReservations)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDayAvailability)
	}()
}

func bookingResponse(groupID string, day time.Time, clock allocation.TimeOfDay, numPeople int, assignment allocation.Assignment) dto.BookingResponse {
	numbers := make([]int, len(assignment.Tables))
	for i, t := range assignment.Tables {
		numbers[i] = t.TableNumber
	}

	sort.Ints(numbers)

	return dto.BookingResponse{
		BookingGroupID: groupID,
		Date:           timezone.Format(day, constant.CalendarDateFormat),
		Time:           clock.Clock(),
		NumPeople:      numPeople,
		TableNumbers:   numbers,
		TotalCapacity:  assignment.TotalCapacity,
	}
}
