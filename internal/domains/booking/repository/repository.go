package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"fete/infras/otel"
	"fete/infras/postgres"
	"fete/internal/domains/booking/model"
	"fete/shared/constant"
	gDto "fete/shared/dto"
	gRepo "fete/shared/repository"
)

// ErrSlotTaken is returned when an insert loses the race for a
// vendor/date/start-time slot to a concurrent booking.
var ErrSlotTaken = errors.New("slot already booked")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a booking. The partial unique index on
// (vendor_id, event_date, start_time) makes the insert the atomic
// check-and-reserve step; a unique violation means another request got
// the slot between the availability read and this write.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()

	err := repo.Repository.Insert(ctx, booking)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation && pqErr.Constraint == model.SlotUniqueConstraint {
			scope.TraceError(ErrSlotTaken)

			return ErrSlotTaken
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}
