package model

import (
	"fete/shared/model"
)

const (
	TableName  = "vendors"
	EntityName = "vendor"

	FieldID           = "id"
	FieldBusinessName = "business_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldCategory     = "category"
	FieldCity         = "city"
	FieldActive       = "active"
)

// Vendor is the marketplace profile this engine reads but never edits;
// onboarding and profile management live elsewhere.
type Vendor struct {
	ID           string `db:"id"`
	BusinessName string `db:"business_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Category     string `db:"category"`
	City         string `db:"city"`
	Active       bool   `db:"active"`
	model.Metadata
}
