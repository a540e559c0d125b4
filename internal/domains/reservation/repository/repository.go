package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tavolo/infras/otel"
	"tavolo/infras/postgres"
	"tavolo/internal/domains/reservation/model"
	"tavolo/shared/constant"
	gDto "tavolo/shared/dto"
	"tavolo/shared/logger"
	gRepo "tavolo/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	// ListConfirmedByDate is the single batch read an availability scan
	// performs against the reservation calendar.
	ListConfirmedByDate(ctx context.Context, date time.Time) ([]model.Reservation, error)

	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	ListConfirmedByDateTx(ctx context.Context, tx *sqlx.Tx, date time.Time) ([]model.Reservation, error)
	InsertGroupTx(ctx context.Context, tx *sqlx.Tx, rows []model.Reservation) error
	DeleteGroupTx(ctx context.Context, tx *sqlx.Tx, groupID string) error

	UpdateGroupStatus(ctx context.Context, groupID, status, actor string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ListConfirmedByDate(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	return repo.Repository.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc},
		confirmedOnDate(date),
	)
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return tx, nil
}

// ListConfirmedByDateTx re-reads the date's confirmed bookings inside the
// commit transaction, so the write-time re-validation sees rows committed
// after the proposal was made.
func (repo *repositoryImpl) ListConfirmedByDateTx(ctx context.Context, tx *sqlx.Tx, date time.Time) (rows []model.Reservation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ListConfirmedByDateTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1 AND %s = $2 ORDER BY %s ASC",
		model.TableName, model.FieldDate, model.FieldStatus, model.FieldStartTime,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.SelectContext(ctx, &rows, query, date, model.StatusConfirmed)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list confirmed reservations in tx (%s): %w", model.EntityName, err)
	}

	return rows, nil
}

func (repo *repositoryImpl) InsertGroupTx(ctx context.Context, tx *sqlx.Tx, rows []model.Reservation) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertGroupTx")
	defer scope.End()

	return repo.Repository.InsertBulkTx(ctx, tx, rows) //nolint:wrapcheck
}

// DeleteGroupTx removes every row of a booking group; a modification
// replaces the group's rows wholesale within the same transaction.
func (repo *repositoryImpl) DeleteGroupTx(ctx context.Context, tx *sqlx.Tx, groupID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.DeleteGroupTx")
	defer scope.End()

	return repo.Repository.DeleteTx(ctx, tx, gDto.FilterGroup{ //nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingGroupID,
				Operator: gDto.FilterOperatorEq,
				Value:    groupID,
				Table:    model.TableName,
			},
		},
	})
}

// UpdateGroupStatus flips every row of a booking group in one statement; a
// combined-table booking changes state as a unit.
func (repo *repositoryImpl) UpdateGroupStatus(ctx context.Context, groupID, status, actor string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.UpdateGroupStatus")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = NOW(), %s = $2 WHERE %s = $3",
		model.TableName, model.FieldStatus, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldBookingGroupID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, status, actor, groupID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update booking group status (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected, nil
}

func confirmedOnDate(date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
			},
		},
	}
}
