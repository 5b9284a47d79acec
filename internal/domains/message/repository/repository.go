package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"fete/infras/otel"
	"fete/infras/postgres"
	"fete/internal/domains/message/model"
	gDto "fete/shared/dto"
	gRepo "fete/shared/repository"
)

type Message interface {
	Insert(ctx context.Context, model model.Message) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Message, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Message]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Message {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Message](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
