package model

import (
	"time"

	"fete/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldVendorID      = "vendor_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldEventDate     = "event_date"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldEventDuration = "event_duration_hours"
	FieldEventType     = "event_type"
	FieldGuestCount    = "guest_count"
	FieldVenueAddress  = "venue_address"
	FieldServiceID     = "service_id"
	FieldPackageID     = "package_id"
	FieldTotalPrice    = "total_price_cents"
	FieldDepositAmount = "deposit_cents"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldCreatedBy     = "created_by"
)

// SlotUniqueConstraint is the partial unique index that makes the
// availability check and the insert a single atomic reserve: at most
// one non-cancelled booking may hold a vendor/date/start-time tuple.
const SlotUniqueConstraint = "bookings_vendor_slot_key"

// Booking is a customer's reservation of a vendor for a slot on a
// date. Rows are never deleted; cancellation and completion are status
// transitions so the history stays intact.
type Booking struct {
	ID            string        `db:"id"`
	VendorID      string        `db:"vendor_id"`
	CustomerName  string        `db:"customer_name"`
	CustomerEmail string        `db:"customer_email"`
	CustomerPhone string        `db:"customer_phone"`
	EventDate     time.Time     `db:"event_date"`
	StartTime     time.Time     `db:"start_time"`
	EndTime       time.Time     `db:"end_time"`
	EventDuration int           `db:"event_duration_hours"`
	EventType     string        `db:"event_type"`
	GuestCount    int           `db:"guest_count"`
	VenueAddress  string        `db:"venue_address"`
	ServiceID     *string       `db:"service_id"`
	PackageID     *string       `db:"package_id"`
	TotalPrice    int64         `db:"total_price_cents"`
	DepositAmount int64         `db:"deposit_cents"`
	Status        Status        `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	model.Metadata
}
