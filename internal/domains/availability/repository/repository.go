package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"fete/infras/otel"
	"fete/infras/postgres"
	"fete/internal/domains/availability/model"
	"fete/shared/constant"
	gDto "fete/shared/dto"
	"fete/shared/logger"
	gRepo "fete/shared/repository"
)

type Schedule interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.WeeklySchedule, error)
	Upsert(ctx context.Context, model model.WeeklySchedule) error
}

type repositoryImpl struct {
	gRepo.Repository[model.WeeklySchedule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WeeklySchedule](model.EntityName, model.TableName, model.FieldVendorID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts the vendor's schedule or replaces the whole record in
// place. One logical row per vendor, whole-record semantics: every day
// flag and the working window are overwritten together.
func (repo *repositoryImpl) Upsert(ctx context.Context, schedule model.WeeklySchedule) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schedule.Upsert")
	defer scope.End()

	placeholders := []string{}
	assignments := []string{}

	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)

		if col != model.FieldVendorID && col != constant.FieldCreatedAt && col != constant.FieldCreatedBy {
			assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldVendorID,
		strings.Join(assignments, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, schedule)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert schedule: %w", err)
	}

	return nil
}
