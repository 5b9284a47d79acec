package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"fete/infras/otel"
	"fete/infras/postgres"
	"fete/internal/domains/vendors/model"
	gDto "fete/shared/dto"
	gRepo "fete/shared/repository"
)

type Vendor interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vendor, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Vendor]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Vendor {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vendor](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
