package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fete/internal/domains/booking/model"
	"fete/internal/domains/booking/model/dto"
	gModel "fete/shared/model"
	"fete/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
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

	booking, err := req.ToModel("vendor-1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.VendorID, booking.VendorID)
	assert.Equal(t, req.CustomerName, booking.CustomerName)
	assert.Equal(t, "2026-09-12", booking.EventDate.Format("2006-01-02"))
	assert.Equal(t, "10:00", booking.StartTime.Format("15:04"))
	assert.Equal(t, "14:00", booking.EndTime.Format("15:04"))
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)

	require.NotNil(t, booking.ServiceID)
	assert.Equal(t, "service-1", *booking.ServiceID)
	assert.Nil(t, booking.PackageID)

	assert.Equal(t, "vendor-1", booking.CreatedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel_PackageOnly(t *testing.T) {
	req := dto.CreateBookingRequest{
		VendorID:      "vendor-1",
		CustomerName:  "Raka Pratama",
		CustomerEmail: "raka@example.com",
		EventDate:     "2026-10-03",
		StartTime:     "09:00",
		EndTime:       "17:00",
		EventDuration: 8,
		EventType:     "corporate",
		VenueAddress:  "Jl. Sudirman No. 1, Jakarta",
		PackageID:     "package-1",
	}

	booking, err := req.ToModel("vendor-1")

	require.NoError(t, err)
	assert.Nil(t, booking.ServiceID)
	require.NotNil(t, booking.PackageID)
	assert.Equal(t, "package-1", *booking.PackageID)
}

func TestCreateBookingRequest_ToModel_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
	}{
		{
			name:   "malformed event date",
			mutate: func(r *dto.CreateBookingRequest) { r.EventDate = "12/09/2026" },
		},
		{
			name:   "malformed start time",
			mutate: func(r *dto.CreateBookingRequest) { r.StartTime = "10am" },
		},
		{
			name:   "malformed end time",
			mutate: func(r *dto.CreateBookingRequest) { r.EndTime = "25:00" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				VendorID:      "vendor-1",
				CustomerName:  "Dewi Lestari",
				CustomerEmail: "dewi@example.com",
				EventDate:     "2026-09-12",
				StartTime:     "10:00",
				EndTime:       "14:00",
				EventDuration: 4,
				EventType:     "wedding",
				VenueAddress:  "Jl. Kebon Jeruk No. 27, Jakarta",
				ServiceID:     "service-1",
			}
			tt.mutate(&req)

			_, err := req.ToModel("vendor-1")

			assert.Error(t, err)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	serviceID := "service-1"

	bookingModel := model.Booking{
		ID:            "booking-1",
		VendorID:      "vendor-1",
		CustomerName:  "Dewi Lestari",
		CustomerEmail: "dewi@example.com",
		EventDate:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime:     time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(0, 1, 1, 14, 0, 0, 0, time.UTC),
		EventDuration: 4,
		EventType:     "wedding",
		GuestCount:    150,
		VenueAddress:  "Jl. Kebon Jeruk No. 27, Jakarta",
		ServiceID:     &serviceID,
		TotalPrice:    250000000,
		DepositAmount: 50000000,
		Status:        model.StatusConfirmed,
		PaymentStatus: model.PaymentPaid,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "vendor-1",
			ModifiedBy: "vendor-1",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, "2026-09-12", response.EventDate)
	assert.Equal(t, "10:00", response.StartTime)
	assert.Equal(t, "14:00", response.EndTime)
	assert.Equal(t, "service-1", response.ServiceID)
	assert.Empty(t, response.PackageID)
	assert.Equal(t, "confirmed", response.Status)
	assert.Equal(t, "paid", response.PaymentStatus)
	assert.Equal(t, bookingModel.TotalPrice, response.TotalPrice)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "booking-1", VendorID: "vendor-1", Status: model.StatusPending, PaymentStatus: model.PaymentPending},
		{ID: "booking-2", VendorID: "vendor-1", Status: model.StatusConfirmed, PaymentStatus: model.PaymentPaid},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 15, 10)

	assert.Equal(t, 15, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, "booking-1", response.Bookings[0].ID)
	assert.Equal(t, "booking-2", response.Bookings[1].ID)
}

func TestGetBookingsResponse_FromModels_EmptyList(t *testing.T) {
	var response dto.GetBookingsResponse
	response.FromModels(nil, 0, 10)

	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Bookings, 0)
}
