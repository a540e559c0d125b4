package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tavolo/infras/otel"
	"tavolo/infras/postgres"
	"tavolo/internal/domains/table/model"
	gDto "tavolo/shared/dto"
	gRepo "tavolo/shared/repository"
)

type Table interface {
	Insert(ctx context.Context, model model.Table) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Table, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Table, error)
	ListAvailable(ctx context.Context) ([]model.Table, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Table]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Table {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Table](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListAvailable returns every operational table ordered by table number.
// This is one of the two prefetched batches an availability scan runs on.
func (repo *repositoryImpl) ListAvailable(ctx context.Context) ([]model.Table, error) {
	return repo.Repository.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldTableNumber, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    model.StatusAvailable,
					Table:    model.TableName,
				},
			},
		},
	)
}
