package model

import (
	"time"
)

const (
	TableName  = "booking_messages"
	EntityName = "message"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldSenderType = "sender_type"
	FieldMessage    = "message"
	FieldCreatedAt  = "created_at"
)

const (
	SenderCustomer = "customer"
	SenderVendor   = "vendor"
)

// Message is one entry in a booking's conversation log. Messages are
// append-only: no edits, no deletes, no read receipts.
type Message struct {
	ID         string    `db:"id"`
	BookingID  string    `db:"booking_id"`
	SenderType string    `db:"sender_type"`
	Message    string    `db:"message"`
	CreatedAt  time.Time `db:"created_at"`
}
