package model

import (
	"fete/shared/model"
)

const (
	TableName  = "vendor_offerings"
	EntityName = "offering"

	FieldID           = "id"
	FieldVendorID     = "vendor_id"
	FieldKind         = "kind"
	FieldName         = "name"
	FieldPriceCents   = "price_cents"
	FieldDepositCents = "deposit_cents"
	FieldActive       = "active"
)

const (
	KindService = "service"
	KindPackage = "package"
)

// Offering is a bookable line item published by a vendor: either a
// single service or a bundled package. Bookings reference exactly one
// offering and copy its price fields at creation time.
type Offering struct {
	ID           string `db:"id"`
	VendorID     string `db:"vendor_id"`
	Kind         string `db:"kind"`
	Name         string `db:"name"`
	PriceCents   int64  `db:"price_cents"`
	DepositCents int64  `db:"deposit_cents"`
	Active       bool   `db:"active"`
	model.Metadata
}
