package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fete/config"
	kafkaMocks "fete/infras/kafka/mocks"
	"fete/infras/otel/mocks"
	bookingMocks "fete/internal/domains/booking/mocks"
	"fete/internal/domains/booking/model"
	"fete/internal/domains/booking/model/dto"
	"fete/internal/domains/booking/repository"
	"fete/internal/domains/booking/service"
	offeringMocks "fete/internal/domains/offering/mocks"
	offeringModel "fete/internal/domains/offering/model"
	vendorMocks "fete/internal/domains/vendors/mocks"
	"fete/shared/cache"
	cacheMocks "fete/shared/cache/mocks"
	"fete/shared/failure"
)

type serviceMocks struct {
	repo     *bookingMocks.MockBooking
	vendor   *vendorMocks.MockVendor
	offering *offeringMocks.MockOffering
	cache    *cacheMocks.MockRedisCache
	events   *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Booking, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		vendor:   vendorMocks.NewMockVendor(ctrl),
		offering: offeringMocks.NewMockOffering(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		events:   kafkaMocks.NewMockClient(ctrl),
	}

	// Cache writes, invalidations and event publishes run on background
	// goroutines and are not the behavior under test.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.vendor, m.offering, &config.Config{}, m.cache, m.events, mocks.NewOtel())

	return svc, m
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		VendorID:      "vendor-1",
		CustomerName:  "Dewi Lestari",
		CustomerEmail: "dewi@example.com",
		CustomerPhone: "+628123456789",
		EventDate:     "2026-09-12",
		StartTime:     "10:00",
		EndTime:       "14:00",
		EventDuration: 4,
		EventType:     "wedding",
		GuestCount:    150,
		VenueAddress:  "Jl. Kebon Jeruk No. 27, Jakarta",
		ServiceID:     "service-1",
	}
}

func TestBookingService_Create(t *testing.T) {
	offering := offeringModel.Offering{
		ID:           "service-1",
		VendorID:     "vendor-1",
		Kind:         offeringModel.KindService,
		Name:         "Full day photography",
		PriceCents:   250000000,
		DepositCents: 50000000,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation copies offering prices",
			req:  validCreateRequest(),
			setupMock: func(m serviceMocks) {
				m.vendor.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.offering.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(offering, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "vendor not found",
			req:  validCreateRequest(),
			setupMock: func(m serviceMocks) {
				m.vendor.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "offering not found for vendor",
			req:  validCreateRequest(),
			setupMock: func(m serviceMocks) {
				m.vendor.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.offering.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(offeringModel.Offering{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "slot lost to a concurrent booking",
			req:  validCreateRequest(),
			setupMock: func(m serviceMocks) {
				m.vendor.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.offering.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(offering, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(repository.ErrSlotTaken)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert failure",
			req:  validCreateRequest(),
			setupMock: func(m serviceMocks) {
				m.vendor.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.offering.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(offering, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "pending", res.Status)
			assert.Equal(t, "pending", res.PaymentStatus)
			assert.Equal(t, offering.PriceCents, res.TotalPrice)
			assert.Equal(t, offering.DepositCents, res.DepositAmount)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  model.Status
		next     model.Status
		wantErr  bool
		wantCode int
	}{
		{name: "pending to confirmed", current: model.StatusPending, next: model.StatusConfirmed},
		{name: "confirmed to completed", current: model.StatusConfirmed, next: model.StatusCompleted},
		{name: "confirmed to cancelled", current: model.StatusConfirmed, next: model.StatusCancelled},
		{name: "pending to completed is illegal", current: model.StatusPending, next: model.StatusCompleted, wantErr: true, wantCode: http.StatusUnprocessableEntity},
		{name: "completed is terminal", current: model.StatusCompleted, next: model.StatusCancelled, wantErr: true, wantCode: http.StatusUnprocessableEntity},
		{name: "cancelled is terminal", current: model.StatusCancelled, next: model.StatusConfirmed, wantErr: true, wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			m.cache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(cache.CacheNil).
				AnyTimes()

			m.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Booking{ID: "booking-1", VendorID: "vendor-1", Status: tt.current, PaymentStatus: model.PaymentPending}, nil)

			if !tt.wantErr {
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			res, err := svc.UpdateStatus(context.Background(), "booking-1", tt.next)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.next.String(), res.Status)
		})
	}
}

func TestBookingService_UpdateStatus_NotFound(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", model.StatusConfirmed)

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Cancel(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{ID: "booking-1", VendorID: "vendor-1", Status: model.StatusPending, PaymentStatus: model.PaymentPending}, nil)

	m.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.Cancel(context.Background(), "booking-1")

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)
}

func TestBookingService_UpdatePaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  model.PaymentStatus
		next     model.PaymentStatus
		wantErr  bool
		wantCode int
	}{
		{name: "pending to paid", current: model.PaymentPending, next: model.PaymentPaid},
		{name: "paid to refunded", current: model.PaymentPaid, next: model.PaymentRefunded},
		{name: "pending straight to refunded is illegal", current: model.PaymentPending, next: model.PaymentRefunded, wantErr: true, wantCode: http.StatusUnprocessableEntity},
		{name: "refunded is terminal", current: model.PaymentRefunded, next: model.PaymentPaid, wantErr: true, wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			m.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Booking{ID: "booking-1", VendorID: "vendor-1", Status: model.StatusConfirmed, PaymentStatus: tt.current}, nil)

			if !tt.wantErr {
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			res, err := svc.UpdatePaymentStatus(context.Background(), "booking-1", tt.next)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.next.String(), res.PaymentStatus)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	svc, m := newService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.CacheNil)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{ID: "booking-1", VendorID: "vendor-1", Status: model.StatusPending, PaymentStatus: model.PaymentPending}, nil)

	res, err := svc.Get(context.Background(), "booking-1")

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", res.ID)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	svc, m := newService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.CacheNil)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
