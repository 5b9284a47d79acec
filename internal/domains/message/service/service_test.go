package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fete/infras/otel/mocks"
	bookingMocks "fete/internal/domains/booking/mocks"
	messageMocks "fete/internal/domains/message/mocks"
	"fete/internal/domains/message/model"
	"fete/internal/domains/message/model/dto"
	"fete/internal/domains/message/service"
	"fete/shared/failure"
)

func newService(t *testing.T) (service.Message, *messageMocks.MockMessage, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := messageMocks.NewMockMessage(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)

	return service.New(repo, bookingRepo, mocks.NewOtel()), repo, bookingRepo
}

func TestMessageService_Record(t *testing.T) {
	req := dto.RecordMessageRequest{
		SenderType: model.SenderCustomer,
		Message:    "Can we move the tasting to Thursday?",
	}

	t.Run("records a message on an existing booking", func(t *testing.T) {
		svc, repo, bookingRepo := newService(t)

		bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Record(context.Background(), "booking-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, model.SenderCustomer, res.SenderType)
		assert.Equal(t, req.Message, res.Message)
		assert.NotEmpty(t, res.ID)
		assert.NotEmpty(t, res.CreatedAt)
	})

	t.Run("rejects a message on a missing booking", func(t *testing.T) {
		svc, _, bookingRepo := newService(t)

		bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Record(context.Background(), "missing", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("propagates insert failures", func(t *testing.T) {
		svc, repo, bookingRepo := newService(t)

		bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := svc.Record(context.Background(), "booking-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestMessageService_List(t *testing.T) {
	t.Run("returns the conversation oldest first", func(t *testing.T) {
		svc, repo, bookingRepo := newService(t)

		now := time.Now()

		bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Message{
				{ID: "message-1", BookingID: "booking-1", SenderType: model.SenderCustomer, Message: "Hello", CreatedAt: now.Add(-time.Hour)},
				{ID: "message-2", BookingID: "booking-1", SenderType: model.SenderVendor, Message: "Hi there", CreatedAt: now},
			}, nil)

		res, err := svc.List(context.Background(), "booking-1")

		assert.NoError(t, err)
		require.Len(t, res.Messages, 2)
		assert.Equal(t, "message-1", res.Messages[0].ID)
		assert.Equal(t, "message-2", res.Messages[1].ID)
	})

	t.Run("rejects listing for a missing booking", func(t *testing.T) {
		svc, _, bookingRepo := newService(t)

		bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.List(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
