package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tavolo/infras/otel"
	"tavolo/infras/postgres"
	"tavolo/internal/domains/hours/model"
	"tavolo/shared/constant"
	gDto "tavolo/shared/dto"
	gRepo "tavolo/shared/repository"
)

type Hours interface {
	GetByDate(ctx context.Context, date time.Time) (model.OpeningHours, error)
	ListRange(ctx context.Context, from, to time.Time) ([]model.OpeningHours, error)
	LatestDate(ctx context.Context) (time.Time, error)
	Insert(ctx context.Context, model model.OpeningHours) error
	InsertBulk(ctx context.Context, models []model.OpeningHours) error
	UpdateByDate(ctx context.Context, date time.Time, fields map[string]any) error
	UpdateNonCustomByWeekday(ctx context.Context, weekday int, from time.Time, fields map[string]any) error

	GetWeeklyDefault(ctx context.Context, weekday int) (model.WeeklyDefault, error)
	ListWeeklyDefaults(ctx context.Context) ([]model.WeeklyDefault, error)
	InsertWeeklyDefault(ctx context.Context, model model.WeeklyDefault) error
	UpdateWeeklyDefault(ctx context.Context, weekday int, fields map[string]any) error
	WeeklyDefaultExists(ctx context.Context, weekday int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.OpeningHours]
	weekly gRepo.Repository[model.WeeklyDefault]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hours {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OpeningHours](model.EntityName, model.TableName, model.FieldID, db, otel),
		weekly:     gRepo.NewRepository[model.WeeklyDefault](model.WeeklyEntityName, model.WeeklyTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetByDate(ctx context.Context, date time.Time) (model.OpeningHours, error) {
	return repo.Repository.Get(ctx, filterByDate(date))
}

func (repo *repositoryImpl) ListRange(ctx context.Context, from, to time.Time) ([]model.OpeningHours, error) {
	return repo.Repository.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					ArgName:  "date_from",
					Field:    model.FieldDate,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    from,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "date_to",
					Field:    model.FieldDate,
					Operator: gDto.FilterOperatorLessEq,
					Value:    to,
					Table:    model.TableName,
				},
			},
		},
	)
}

// LatestDate returns the furthest generated date, zero when the table is
// empty. Used by the horizon-extension job to know where to resume.
func (repo *repositoryImpl) LatestDate(ctx context.Context) (time.Time, error) {
	rows, err := repo.Repository.GetAll(
		ctx,
		gDto.QueryParams{Limit: 1, SortBy: model.FieldDate, SortDir: gDto.SortDirDesc},
		gDto.FilterGroup{},
	)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get latest opening-hours date: %w", err)
	}

	if len(rows) == 0 {
		return time.Time{}, nil
	}

	return rows[0].Date, nil
}

func (repo *repositoryImpl) UpdateByDate(ctx context.Context, date time.Time, fields map[string]any) error {
	return repo.Repository.Update(ctx, fields, filterByDate(date))
}

// UpdateNonCustomByWeekday rewrites generated rows for one weekday from the
// given date forward. Overridden dates keep their schedule.
func (repo *repositoryImpl) UpdateNonCustomByWeekday(ctx context.Context, weekday int, from time.Time, fields map[string]any) error {
	return repo.Repository.Update(ctx, fields, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsCustom,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "weekday_from",
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    model.TableName,
			},
			gDto.Filter{
				Operator: gDto.FilterPlainQuery,
				Value:    fmt.Sprintf("EXTRACT(DOW FROM %s.%s) = %d", model.TableName, model.FieldDate, weekday),
			},
		},
	})
}

func (repo *repositoryImpl) GetWeeklyDefault(ctx context.Context, weekday int) (model.WeeklyDefault, error) {
	return repo.weekly.Get(ctx, filterByWeekday(weekday))
}

func (repo *repositoryImpl) ListWeeklyDefaults(ctx context.Context) ([]model.WeeklyDefault, error) {
	return repo.weekly.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldDayOfWeek, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{},
	)
}

func (repo *repositoryImpl) InsertWeeklyDefault(ctx context.Context, mod model.WeeklyDefault) error {
	return repo.weekly.Insert(ctx, mod)
}

func (repo *repositoryImpl) UpdateWeeklyDefault(ctx context.Context, weekday int, fields map[string]any) error {
	return repo.weekly.Update(ctx, fields, filterByWeekday(weekday))
}

func (repo *repositoryImpl) WeeklyDefaultExists(ctx context.Context, weekday int) (bool, error) {
	return repo.weekly.Exist(ctx, filterByWeekday(weekday))
}

func filterByDate(date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  constant.RequestParamDate,
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
		},
	}
}

func filterByWeekday(weekday int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Value:    weekday,
				Table:    model.WeeklyTableName,
			},
		},
	}
}
