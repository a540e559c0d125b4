package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tavolo/config"
	"tavolo/infras/otel"
	"tavolo/internal/domains/hours/model"
	"tavolo/internal/domains/hours/model/dto"
	"tavolo/internal/domains/hours/repository"
	"tavolo/shared"
	"tavolo/shared/cache"
	"tavolo/shared/constant"
	gModel "tavolo/shared/model"
	"tavolo/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheResolveDay = "hours:resolve"
)

type Hours interface {
	// Resolve never fails: store errors and missing records degrade to the
	// weekly pattern or the hard-coded default, and the returned Resolution
	// says which source produced the schedule.
	Resolve(ctx context.Context, date time.Time) model.Resolution
	ListRange(ctx context.Context, from, to time.Time) ([]dto.OpeningHoursResponse, error)
	SetDate(ctx context.Context, date time.Time, req dto.SetDateRequest) error
	SetWeeklyDefault(ctx context.Context, req dto.SetWeeklyDefaultRequest) error
	ExtendHorizon(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo  repository.Hours
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hours, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hours {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Resolve(ctx context.Context, date time.Time) model.Resolution {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()

	day := timezone.Format(date, constant.CalendarDateFormat)
	cacheKey := shared.BuildCacheKey(cacheResolveDay, day)

	var res model.Resolution
	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res
	}

	res = s.resolve(ctx, date)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save day schedule to cache")
		}
	}()

	return res
}

func (s *serviceImpl) resolve(ctx context.Context, date time.Time) model.Resolution {
	record, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Time("date", date).Msg("opening-hours lookup failed, falling back to default schedule")

		return model.Resolution{
			Schedule:       model.DefaultSchedule(),
			Source:         model.SourceFallback,
			FallbackReason: fmt.Sprintf("opening-hours lookup failed: %v", err),
		}
	}

	if record.ID != constant.Empty {
		source := model.SourceWeekly
		if record.IsCustom {
			source = model.SourceOverride
		}

		return model.Resolution{Schedule: record.Schedule(), Source: source}
	}

	weekly, err := s.repo.GetWeeklyDefault(ctx, int(date.Weekday()))
	if err != nil {
		log.Error().Err(err).Time("date", date).Msg("weekly-default lookup failed, falling back to default schedule")

		return model.Resolution{
			Schedule:       model.DefaultSchedule(),
			Source:         model.SourceFallback,
			FallbackReason: fmt.Sprintf("weekly-default lookup failed: %v", err),
		}
	}

	if weekly.ID != constant.Empty {
		return model.Resolution{Schedule: weekly.Schedule(), Source: model.SourceWeekly}
	}

	return model.Resolution{
		Schedule:       model.DefaultSchedule(),
		Source:         model.SourceFallback,
		FallbackReason: "no opening-hours or weekly-default record",
	}
}

func (s *serviceImpl) ListRange(ctx context.Context, from, to time.Time) (res []dto.OpeningHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := s.repo.ListRange(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to list opening hours")

		return nil, fmt.Errorf("failed to list opening hours: %w", err)
	}

	res = make([]dto.OpeningHoursResponse, len(records))
	for i, record := range records {
		res[i].FromModel(record)
	}

	return res, nil
}

// SetDate overrides one date's schedule. The row becomes custom and is
// skipped by weekly mass-updates from then on.
func (s *serviceImpl) SetDate(ctx context.Context, date time.Time, req dto.SetDateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyCallerID).(string)

	existing, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get opening hours for date")

		return fmt.Errorf("failed to get opening hours for date: %w", err)
	}

	if existing.ID == constant.Empty {
		err = s.repo.Insert(ctx, model.OpeningHours{
			ID:          uuid.NewString(),
			Date:        date,
			Status:      req.Status,
			LunchStart:  req.LunchStart,
			LunchEnd:    req.LunchEnd,
			DinnerStart: req.DinnerStart,
			DinnerEnd:   req.DinnerEnd,
			IsCustom:    true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  actor,
				ModifiedBy: actor,
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to insert opening hours override")

			return fmt.Errorf("failed to insert opening hours override: %w", err)
		}
	} else {
		fields := shared.TransformFields(struct {
			Status      string `db:"status"`
			LunchStart  string `db:"lunch_start"`
			LunchEnd    string `db:"lunch_end"`
			DinnerStart string `db:"dinner_start"`
			DinnerEnd   string `db:"dinner_end"`
		}{req.Status, req.LunchStart, req.LunchEnd, req.DinnerStart, req.DinnerEnd}, actor)
		fields[model.FieldIsCustom] = true

		if err = s.repo.UpdateByDate(ctx, date, fields); err != nil {
			log.Error().Err(err).Msg("failed to update opening hours override")

			return fmt.Errorf("failed to update opening hours override: %w", err)
		}
	}

	s.invalidateResolved(ctx, date)

	return nil
}

// SetWeeklyDefault rewrites the weekday pattern and regenerates every
// non-custom future date of that weekday.
func (s *serviceImpl) SetWeeklyDefault(ctx context.Context, req dto.SetWeeklyDefaultRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetWeeklyDefault")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyCallerID).(string)

	exists, err := s.repo.WeeklyDefaultExists(ctx, req.DayOfWeek)
	if err != nil {
		log.Error().Err(err).Msg("failed to check weekly default")

		return fmt.Errorf("failed to check weekly default: %w", err)
	}

	fields := shared.TransformFields(struct {
		Status      string `db:"status"`
		LunchStart  string `db:"lunch_start"`
		LunchEnd    string `db:"lunch_end"`
		DinnerStart string `db:"dinner_start"`
		DinnerEnd   string `db:"dinner_end"`
	}{req.Status, req.LunchStart, req.LunchEnd, req.DinnerStart, req.DinnerEnd}, actor)

	if exists {
		if err = s.repo.UpdateWeeklyDefault(ctx, req.DayOfWeek, fields); err != nil {
			log.Error().Err(err).Msg("failed to update weekly default")

			return fmt.Errorf("failed to update weekly default: %w", err)
		}
	} else {
		err = s.repo.InsertWeeklyDefault(ctx, model.WeeklyDefault{
			ID:          uuid.NewString(),
			DayOfWeek:   req.DayOfWeek,
			Status:      req.Status,
			LunchStart:  req.LunchStart,
			LunchEnd:    req.LunchEnd,
			DinnerStart: req.DinnerStart,
			DinnerEnd:   req.DinnerEnd,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  actor,
				ModifiedBy: actor,
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to insert weekly default")

			return fmt.Errorf("failed to insert weekly default: %w", err)
		}
	}

	if err = s.repo.UpdateNonCustomByWeekday(ctx, req.DayOfWeek, timezone.Now(), fields); err != nil {
		log.Error().Err(err).Msg("failed to regenerate dates from weekly default")

		return fmt.Errorf("failed to regenerate dates from weekly default: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheResolveDay)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDayAvailability)
	}()

	return nil
}

// ExtendHorizon generates opening-hours rows from the weekly defaults up to
// the configured rolling horizon, skipping dates that already exist. It
// reports how many rows were created.
func (s *serviceImpl) ExtendHorizon(ctx context.Context) (created int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtendHorizon")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := startOfDay(timezone.Now())
	horizon := today.AddDate(0, 0, s.cfg.Reservation.HoursHorizonDays)

	latest, err := s.repo.LatestDate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to find opening-hours horizon")

		return 0, fmt.Errorf("failed to find opening-hours horizon: %w", err)
	}

	start := today
	if !latest.IsZero() && latest.After(today) {
		start = startOfDay(latest).AddDate(0, 0, 1)
	}

	if !start.Before(horizon) {
		return 0, nil
	}

	defaults, err := s.repo.ListWeeklyDefaults(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list weekly defaults")

		return 0, fmt.Errorf("failed to list weekly defaults: %w", err)
	}

	byWeekday := make(map[int]model.WeeklyDefault, len(defaults))
	for _, def := range defaults {
		byWeekday[def.DayOfWeek] = def
	}

	var rows []model.OpeningHours

	for date := start; !date.After(horizon); date = date.AddDate(0, 0, 1) {
		schedule := model.DefaultSchedule()
		if def, ok := byWeekday[int(date.Weekday())]; ok {
			schedule = def.Schedule()
		}

		rows = append(rows, model.OpeningHours{
			ID:          uuid.NewString(),
			Date:        date,
			Status:      schedule.Status,
			LunchStart:  schedule.Lunch.Start,
			LunchEnd:    schedule.Lunch.End,
			DinnerStart: schedule.Dinner.Start,
			DinnerEnd:   schedule.Dinner.End,
			IsCustom:    false,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}

	if err = s.repo.InsertBulk(ctx, rows); err != nil {
		log.Error().Err(err).Msg("failed to bulk insert opening hours")

		return 0, fmt.Errorf("failed to bulk insert opening hours: %w", err)
	}

	log.Info().Int("rows", len(rows)).Time("until", horizon).Msg("extended opening-hours horizon")

	return len(rows), nil
}

// invalidateResolved drops the date's cached schedule together with every
// availability scan computed from it.
func (s *serviceImpl) invalidateResolved(ctx context.Context, date time.Time) {
	go func() {
		c := context.WithoutCancel(ctx)

		day := timezone.Format(date, constant.CalendarDateFormat)
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheResolveDay, day)); err != nil {
			log.Error().Err(err).Msg("failed to delete day schedule from cache")
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyDayAvailability, day))
	}()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, timezone.GetLocation())
}
