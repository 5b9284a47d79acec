package dto

import (
	"fete/internal/domains/vendors/model"
	gDto "fete/shared/dto"
)

type VendorResponse struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Category     string `json:"category"`
	City         string `json:"city"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *VendorResponse) FromModel(model model.Vendor) {
	r.ID = model.ID
	r.BusinessName = model.BusinessName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Category = model.Category
	r.City = model.City
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}
