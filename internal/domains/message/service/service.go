package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"fete/infras/otel"
	bookingModel "fete/internal/domains/booking/model"
	bookingRepo "fete/internal/domains/booking/repository"
	"fete/internal/domains/message/model"
	"fete/internal/domains/message/model/dto"
	"fete/internal/domains/message/repository"
	"fete/shared"
	"fete/shared/constant"
	gDto "fete/shared/dto"
	"fete/shared/failure"
)

type Message interface {
	Record(ctx context.Context, bookingID string, req dto.RecordMessageRequest) (dto.MessageResponse, error)
	List(ctx context.Context, bookingID string) (dto.GetMessagesResponse, error)
}

type serviceImpl struct {
	repo        repository.Message
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Message, bookingRepo bookingRepo.Booking, otel otel.Otel) Message {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

// Record appends a message to a booking's conversation log. The log is
// append-only and is kept regardless of the booking's status, so
// cancelled and completed bookings still accept messages.
func (s *serviceImpl) Record(ctx context.Context, bookingID string, req dto.RecordMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureBookingExists(ctx, bookingID); err != nil {
		return res, err
	}

	message := req.ToModel(bookingID)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to insert message")

		return res, fmt.Errorf("failed to insert message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

// List returns the booking's full conversation ordered oldest first.
func (s *serviceImpl) List(ctx context.Context, bookingID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMessages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureBookingExists(ctx, bookingID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	messages, err := s.repo.GetAll(ctx, params, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModels(messages)

	return res, nil
}

func (s *serviceImpl) ensureBookingExists(ctx context.Context, bookingID string) error {
	exist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}
