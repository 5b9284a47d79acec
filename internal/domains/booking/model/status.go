package model

import "slices"

// Status is the fulfillment state of a booking. The zero entry point
// is StatusPending; StatusCompleted and StatusCancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// statusTransitions is the full transition table. A vendor may still
// back out of a confirmed booking, so confirmed -> cancelled stays
// legal; flip it here if product ever decides otherwise.
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]

	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(statusTransitions[s], next)
}

func (s Status) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

func (s Status) String() string {
	return string(s)
}

// BlockingStatuses are the states in which a booking occupies its
// slot. Pending bookings block too: a slot is never re-offered while a
// request for it is awaiting confirmation.
func BlockingStatuses() []string {
	return []string{StatusPending.String(), StatusConfirmed.String()}
}

// PaymentStatus is the financial settlement state, tracked
// independently of Status. A booking may be confirmed while its
// payment is still pending.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid},
	PaymentPaid:     {PaymentRefunded},
	PaymentRefunded: {},
}

func (p PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[p]

	return ok
}

func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return slices.Contains(paymentTransitions[p], next)
}

func (p PaymentStatus) String() string {
	return string(p)
}
