package dto

import (
	"time"

	"github.com/google/uuid"

	"fete/internal/domains/booking/model"
	"fete/shared"
	"fete/shared/constant"
	gDto "fete/shared/dto"
	gModel "fete/shared/model"
	"fete/shared/timezone"
)

type CreateBookingRequest struct {
	VendorID      string `json:"vendor_id"      validate:"required"`
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=20"`
	EventDate     string `json:"event_date"     validate:"required,dateonly"`
	StartTime     string `json:"start_time"     validate:"required,clock"`
	EndTime       string `json:"end_time"       validate:"required,clock"`
	EventDuration int    `json:"event_duration_hours" validate:"required,gte=1,lte=24"`
	EventType     string `json:"event_type"     validate:"required,oneof=wedding corporate birthday festival private other"`
	GuestCount    int    `json:"guest_count"    validate:"omitempty,gte=1"`
	VenueAddress  string `json:"venue_address"  validate:"required,max=255"`
	ServiceID     string `json:"service_id"     validate:"required_without=PackageID,excluded_with=PackageID"`
	PackageID     string `json:"package_id"     validate:"required_without=ServiceID,excluded_with=ServiceID"`
}

func (c *CreateBookingRequest) ToModel(actor string) (model.Booking, error) {
	eventDate, err := time.Parse(constant.DateOnlyFormat, c.EventDate)
	if err != nil {
		return model.Booking{}, err
	}

	startTime, err := time.Parse(constant.ClockFormat, c.StartTime)
	if err != nil {
		return model.Booking{}, err
	}

	endTime, err := time.Parse(constant.ClockFormat, c.EndTime)
	if err != nil {
		return model.Booking{}, err
	}

	var serviceID, packageID *string
	if c.ServiceID != "" {
		serviceID = &c.ServiceID
	}

	if c.PackageID != "" {
		packageID = &c.PackageID
	}

	return model.Booking{
		ID:            uuid.NewString(),
		VendorID:      c.VendorID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		EventDate:     eventDate,
		StartTime:     startTime,
		EndTime:       endTime,
		EventDuration: c.EventDuration,
		EventType:     c.EventType,
		GuestCount:    c.GuestCount,
		VenueAddress:  c.VenueAddress,
		ServiceID:     serviceID,
		PackageID:     packageID,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid refunded"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	VendorID      string `json:"vendor_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	EventDate     string `json:"event_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	EventDuration int    `json:"event_duration_hours"`
	EventType     string `json:"event_type"`
	GuestCount    int    `json:"guest_count"`
	VenueAddress  string `json:"venue_address"`
	ServiceID     string `json:"service_id,omitempty"`
	PackageID     string `json:"package_id,omitempty"`
	TotalPrice    int64  `json:"total_price_cents"`
	DepositAmount int64  `json:"deposit_cents"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.VendorID = model.VendorID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.EventDate = model.EventDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime.Format(constant.ClockFormat)
	r.EndTime = model.EndTime.Format(constant.ClockFormat)
	r.EventDuration = model.EventDuration
	r.EventType = model.EventType
	r.GuestCount = model.GuestCount
	r.VenueAddress = model.VenueAddress

	if model.ServiceID != nil {
		r.ServiceID = *model.ServiceID
	}

	if model.PackageID != nil {
		r.PackageID = *model.PackageID
	}

	r.TotalPrice = model.TotalPrice
	r.DepositAmount = model.DepositAmount
	r.Status = model.Status.String()
	r.PaymentStatus = model.PaymentStatus.String()
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
