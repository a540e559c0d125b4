package service

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=./mocks/availability_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tavolo/config"
	"tavolo/infras/otel"
	hoursService "tavolo/internal/domains/hours/service"
	"tavolo/internal/domains/reservation/allocation"
	"tavolo/internal/domains/reservation/model/dto"
	"tavolo/internal/domains/reservation/repository"
	tableModel "tavolo/internal/domains/table/model"
	tableRepo "tavolo/internal/domains/table/repository"
	"tavolo/shared"
	"tavolo/shared/cache"
	"tavolo/shared/constant"
	"tavolo/shared/failure"
	"tavolo/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	// CheckAvailability scans every candidate slot of one date for the
	// party size. The scan costs two store reads (the date's confirmed
	// bookings and the table set) no matter how many slots it covers.
	CheckAvailability(ctx context.Context, date string, partySize int) (dto.DayAvailabilityResponse, error)
	// FindExactSlot answers whether one specific date/time is feasible.
	FindExactSlot(ctx context.Context, date, clock string, partySize int) (bool, error)
	// FindNextAvailable walks forward from the requested instant, first
	// through the rest of the requested day, then day by day up to the
	// configured horizon. Every later day is searched from the same
	// time of day onward. It returns nil when the horizon is exhausted.
	FindNextAvailable(ctx context.Context, date, clock string, partySize int) (*dto.SlotSuggestion, error)
}

type availabilityImpl struct {
	repo   repository.Reservation
	tables tableRepo.Table
	hours  hoursService.Hours
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func NewAvailability(
	repo repository.Reservation,
	tables tableRepo.Table,
	hours hoursService.Hours,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &availabilityImpl{
		repo:   repo,
		tables: tables,
		hours:  hours,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *availabilityImpl) CheckAvailability(ctx context.Context, date string, partySize int) (res dto.DayAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.CalendarDateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyDayAvailability, date, fmt.Sprint(partySize))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for day availability")

		return res, nil
	}

	tables, err := s.tables.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list tables")

		return res, fmt.Errorf("failed to list tables: %w", err)
	}

	scan, err := s.scanDay(ctx, day, partySize, 0, tables)
	if err != nil {
		return res, err
	}

	res = dto.DayAvailabilityResponse{
		Date:      date,
		Available: scan.firstFeasible != nil,
		Slots:     scan.slots,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save day availability to cache")
		}
	}()

	return res, nil
}

func (s *availabilityImpl) FindExactSlot(ctx context.Context, date, clock string, partySize int) (feasible bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindExactSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.CalendarDateFormat, date)
	if err != nil {
		return false, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	wanted, err := allocation.ParseClock(clock)
	if err != nil {
		return false, err
	}

	tables, err := s.tables.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list tables")

		return false, fmt.Errorf("failed to list tables: %w", err)
	}

	scan, err := s.scanDay(ctx, day, partySize, wanted, tables)
	if err != nil {
		return false, err
	}

	for _, slot := range scan.slots {
		if slot.Time == wanted.Clock() {
			return slot.Available, nil
		}
	}

	return false, nil
}

func (s *availabilityImpl) FindNextAvailable(ctx context.Context, date, clock string, partySize int) (res *dto.SlotSuggestion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindNextAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.CalendarDateFormat, date)
	if err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	requestedClock, err := allocation.ParseClock(clock)
	if err != nil {
		return nil, err
	}

	requested := requestedClock.At(day)

	// Clamp a past request to the near future; the policy decides whether
	// that is a silent shift or a hard rejection.
	searchFrom, err := clampToFuture(s.cfg.Reservation.PastRequestPolicy, requested)
	if err != nil {
		return nil, err
	}

	fromDay := startOfDay(searchFrom)
	fromClock := allocation.ClockOf(searchFrom)

	tables, err := s.tables.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list tables")

		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	for offset := 0; offset <= s.cfg.Reservation.SearchWindowDays; offset++ {
		scanDate := fromDay.AddDate(0, 0, offset)

		// Every day is searched from the requested time of day onward,
		// never earlier.
		scan, err := s.scanDay(ctx, scanDate, partySize, fromClock, tables)
		if err != nil {
			return nil, err
		}

		if scan.firstFeasible == nil {
			continue
		}

		found := scan.firstFeasible.Time.At(scanDate)

		return &dto.SlotSuggestion{
			Date:        timezone.Format(scanDate, constant.CalendarDateFormat),
			Time:        scan.firstFeasible.Time.Clock(),
			IsRequested: found.Equal(requested),
		}, nil
	}

	return nil, nil
}

// clampToFuture applies the past-request policy: reject returns a bad
// request, shift_forward moves the instant to now plus a fixed margin.
func clampToFuture(policy string, requested time.Time) (time.Time, error) {
	now := timezone.Now()
	if requested.After(now) {
		return requested, nil
	}

	if policy == constant.PastPolicyReject {
		return time.Time{}, failure.BadRequestFromString("requested time is in the past") // nolint:wrapcheck
	}

	return now.Add(constant.PastShiftMargin), nil
}

type dayScan struct {
	slots         []dto.SlotAvailabilityResponse
	firstFeasible *allocation.Slot
}

// scanDay resolves the date's schedule, enumerates its candidate slots and
// annotates each with feasibility for the party size. Occupancy and table
// selection run in memory against the two prefetched batches; the only
// store read here is the date's confirmed bookings.
func (s *availabilityImpl) scanDay(ctx context.Context, date time.Time, partySize int, notBefore allocation.TimeOfDay, tables []tableModel.Table) (dayScan, error) {
	resolution := s.hours.Resolve(ctx, date)
	if resolution.Schedule.Closed() {
		return dayScan{}, nil
	}

	slots := allocation.Enumerate(resolution.Schedule, s.slotConfig(), notBefore)
	if len(slots) == 0 {
		return dayScan{}, nil
	}

	bookings, err := s.repo.ListConfirmedByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to list confirmed reservations")

		return dayScan{}, fmt.Errorf("failed to list confirmed reservations: %w", err)
	}

	now := timezone.Now()
	duration := time.Duration(s.cfg.Reservation.DurationMinutes) * time.Minute

	scan := dayScan{}

	for _, slot := range slots {
		start := slot.Time.At(date)
		if !start.After(now) {
			continue
		}

		occupied := allocation.OccupiedTables(bookings, start, start.Add(duration))

		free := make([]tableModel.Table, 0, len(tables))
		for _, t := range tables {
			if _, taken := occupied[t.ID]; !taken {
				free = append(free, t)
			}
		}

		_, feasible := allocation.SelectTables(free, partySize)

		scan.slots = append(scan.slots, dto.SlotAvailabilityResponse{
			Time:      slot.Time.Clock(),
			Period:    slot.Period,
			Available: feasible,
		})

		if feasible && scan.firstFeasible == nil {
			slotCopy := slot
			scan.firstFeasible = &slotCopy
		}
	}

	return scan, nil
}

func (s *availabilityImpl) slotConfig() allocation.SlotConfig {
	return allocation.SlotConfig{
		Mode:            s.cfg.Reservation.TimeSlotsMode,
		IntervalMinutes: s.cfg.Reservation.SlotIntervalMinutes,
		FixedLunch:      parseClocks(s.cfg.Reservation.FixedTimeSlotsLunch),
		FixedDinner:     parseClocks(s.cfg.Reservation.FixedTimeSlotsDinner),
	}
}

func parseClocks(values []string) []allocation.TimeOfDay {
	clocks := make([]allocation.TimeOfDay, 0, len(values))

	for _, value := range values {
		clock, err := allocation.ParseClock(value)
		if err != nil {
			log.Error().Str("value", value).Msg("skipping malformed fixed time slot")

			continue
		}

		clocks = append(clocks, clock)
	}

	return clocks
}

func startOfDay(t time.Time) time.Time {
	local := timezone.ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, timezone.GetLocation())
}
