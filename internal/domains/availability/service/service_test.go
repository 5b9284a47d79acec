package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fete/config"
	"fete/infras/otel/mocks"
	availabilityMocks "fete/internal/domains/availability/mocks"
	"fete/internal/domains/availability/model"
	"fete/internal/domains/availability/model/dto"
	"fete/internal/domains/availability/service"
	bookingMocks "fete/internal/domains/booking/mocks"
	bookingModel "fete/internal/domains/booking/model"
	"fete/shared/cache"
	cacheMocks "fete/shared/cache/mocks"
	"fete/shared/constant"
	"fete/shared/failure"
)

type serviceMocks struct {
	schedule *availabilityMocks.MockSchedule
	booking  *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Availability, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		schedule: availabilityMocks.NewMockSchedule(ctrl),
		booking:  bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	// Background cache writes are not the behavior under test.
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.CacheNil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.schedule, m.booking, &config.Config{}, m.cache, mocks.NewOtel())

	return svc, m
}

func clock(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.ClockFormat, value)
	require.NoError(t, err)

	return parsed
}

// weekdaySchedule is open Monday through Friday for the given window.
func weekdaySchedule(t *testing.T, start, end string) model.WeeklySchedule {
	t.Helper()

	return model.WeeklySchedule{
		VendorID:      "vendor-1",
		OpenMonday:    true,
		OpenTuesday:   true,
		OpenWednesday: true,
		OpenThursday:  true,
		OpenFriday:    true,
		StartTime:     clock(t, start),
		EndTime:       clock(t, end),
	}
}

func blockingBooking(t *testing.T, id, start string) bookingModel.Booking {
	t.Helper()

	return bookingModel.Booking{
		ID:        id,
		VendorID:  "vendor-1",
		StartTime: clock(t, start),
		Status:    bookingModel.StatusPending,
	}
}

// 2026-09-07 is a Monday, 2026-09-06 a Sunday.
const (
	openDate   = "2026-09-07"
	closedDate = "2026-09-06"
)

func TestAvailabilityService_Check(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.CheckAvailabilityRequest
		setupMock     func(m serviceMocks)
		wantAvailable bool
		wantSlots     []string
		wantConflicts int
	}{
		{
			name: "full day with no conflicts offers every slot",
			req:  dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: openDate},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(weekdaySchedule(t, "09:00", "17:00"), nil)

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)
			},
			wantAvailable: true,
			wantSlots:     []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		},
		{
			name: "conflicting booking removes exactly its start time",
			req:  dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: openDate},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(weekdaySchedule(t, "09:00", "12:00"), nil)

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{blockingBooking(t, "booking-1", "10:00")}, nil)
			},
			wantAvailable: true,
			wantSlots:     []string{"09:00", "11:00"},
			wantConflicts: 1,
		},
		{
			name: "fully booked day is unavailable but reports conflicts",
			req:  dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: openDate},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(weekdaySchedule(t, "09:00", "11:00"), nil)

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						blockingBooking(t, "booking-1", "09:00"),
						blockingBooking(t, "booking-2", "10:00"),
					}, nil)
			},
			wantAvailable: false,
			wantSlots:     []string{},
			wantConflicts: 2,
		},
		{
			name: "no schedule on file means closed with no conflict lookup",
			req:  dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: openDate},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.WeeklySchedule{}, nil)
			},
			wantAvailable: false,
			wantSlots:     []string{},
		},
		{
			name: "closed weekday still reports conflicts",
			req:  dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: closedDate},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(weekdaySchedule(t, "09:00", "17:00"), nil)

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{blockingBooking(t, "booking-1", "10:00")}, nil)
			},
			wantAvailable: false,
			wantSlots:     []string{},
			wantConflicts: 1,
		},
		{
			name: "window ending at its start yields no slots",
			req:  dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: openDate},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(weekdaySchedule(t, "09:00", "09:00"), nil)

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)
			},
			wantAvailable: false,
			wantSlots:     []string{},
		},
		{
			name: "half hour window boundary excludes the end time",
			req:  dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: openDate},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(weekdaySchedule(t, "09:30", "11:30"), nil)

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)
			},
			wantAvailable: true,
			wantSlots:     []string{"09:30", "10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Check(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, tt.wantSlots, res.AvailableSlots)
			assert.Len(t, res.ConflictingBookings, tt.wantConflicts)
		})
	}
}

func TestAvailabilityService_Check_InvalidDate(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Check(context.Background(), dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: "12-09-2026"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAvailabilityService_Check_ConflictOrder(t *testing.T) {
	svc, m := newService(t)

	m.schedule.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(weekdaySchedule(t, "09:00", "17:00"), nil)

	m.booking.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			blockingBooking(t, "booking-1", "10:00"),
			blockingBooking(t, "booking-2", "14:00"),
		}, nil)

	res, err := svc.Check(context.Background(), dto.CheckAvailabilityRequest{VendorID: "vendor-1", Date: openDate})

	assert.NoError(t, err)
	require.Len(t, res.ConflictingBookings, 2)
	assert.Equal(t, dto.ConflictingBooking{ID: "booking-1", StartTime: "10:00"}, res.ConflictingBookings[0])
	assert.Equal(t, dto.ConflictingBooking{ID: "booking-2", StartTime: "14:00"}, res.ConflictingBookings[1])
}

func TestAvailabilityService_GetSchedule(t *testing.T) {
	svc, m := newService(t)

	m.schedule.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(weekdaySchedule(t, "09:00", "17:00"), nil)

	res, err := svc.GetSchedule(context.Background(), "vendor-1")

	assert.NoError(t, err)
	assert.Equal(t, "vendor-1", res.VendorID)
	assert.Equal(t, "09:00", res.StartTime)
	assert.Equal(t, "17:00", res.EndTime)
	assert.True(t, res.OpenMonday)
	assert.False(t, res.OpenSunday)
}

func TestAvailabilityService_GetSchedule_NotFound(t *testing.T) {
	svc, m := newService(t)

	m.schedule.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.WeeklySchedule{}, nil)

	_, err := svc.GetSchedule(context.Background(), "vendor-1")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAvailabilityService_UpsertSchedule(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpsertScheduleRequest
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful upsert",
			req: dto.UpsertScheduleRequest{
				OpenMonday: true,
				OpenFriday: true,
				StartTime:  "09:00",
				EndTime:    "17:00",
			},
			setupMock: func(m serviceMocks) {
				m.schedule.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "start time must precede end time",
			req: dto.UpsertScheduleRequest{
				OpenMonday: true,
				StartTime:  "17:00",
				EndTime:    "09:00",
			},
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "equal start and end is rejected",
			req: dto.UpsertScheduleRequest{
				OpenMonday: true,
				StartTime:  "09:00",
				EndTime:    "09:00",
			},
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.UpsertSchedule(context.Background(), "vendor-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
