package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"fete/infras/otel"
	"fete/infras/postgres"
	"fete/internal/domains/offering/model"
	gDto "fete/shared/dto"
	gRepo "fete/shared/repository"
)

type Offering interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Offering, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Offering]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Offering {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Offering](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
