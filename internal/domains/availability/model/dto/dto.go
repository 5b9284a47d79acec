package dto

import (
	"time"

	"fete/internal/domains/availability/model"
	"fete/shared/constant"
	gDto "fete/shared/dto"
	gModel "fete/shared/model"
	"fete/shared/timezone"
)

type UpsertScheduleRequest struct {
	OpenSunday    bool   `json:"open_sunday"`
	OpenMonday    bool   `json:"open_monday"`
	OpenTuesday   bool   `json:"open_tuesday"`
	OpenWednesday bool   `json:"open_wednesday"`
	OpenThursday  bool   `json:"open_thursday"`
	OpenFriday    bool   `json:"open_friday"`
	OpenSaturday  bool   `json:"open_saturday"`
	StartTime     string `json:"start_time" validate:"required,clock"`
	EndTime       string `json:"end_time"   validate:"required,clock"`
}

func (u *UpsertScheduleRequest) ToModel(vendorID, actor string) (model.WeeklySchedule, error) {
	startTime, err := time.Parse(constant.ClockFormat, u.StartTime)
	if err != nil {
		return model.WeeklySchedule{}, err
	}

	endTime, err := time.Parse(constant.ClockFormat, u.EndTime)
	if err != nil {
		return model.WeeklySchedule{}, err
	}

	return model.WeeklySchedule{
		VendorID:      vendorID,
		OpenSunday:    u.OpenSunday,
		OpenMonday:    u.OpenMonday,
		OpenTuesday:   u.OpenTuesday,
		OpenWednesday: u.OpenWednesday,
		OpenThursday:  u.OpenThursday,
		OpenFriday:    u.OpenFriday,
		OpenSaturday:  u.OpenSaturday,
		StartTime:     startTime,
		EndTime:       endTime,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type ScheduleResponse struct {
	VendorID      string `json:"vendor_id"`
	OpenSunday    bool   `json:"open_sunday"`
	OpenMonday    bool   `json:"open_monday"`
	OpenTuesday   bool   `json:"open_tuesday"`
	OpenWednesday bool   `json:"open_wednesday"`
	OpenThursday  bool   `json:"open_thursday"`
	OpenFriday    bool   `json:"open_friday"`
	OpenSaturday  bool   `json:"open_saturday"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(model model.WeeklySchedule) {
	r.VendorID = model.VendorID
	r.OpenSunday = model.OpenSunday
	r.OpenMonday = model.OpenMonday
	r.OpenTuesday = model.OpenTuesday
	r.OpenWednesday = model.OpenWednesday
	r.OpenThursday = model.OpenThursday
	r.OpenFriday = model.OpenFriday
	r.OpenSaturday = model.OpenSaturday
	r.StartTime = model.StartTime.Format(constant.ClockFormat)
	r.EndTime = model.EndTime.Format(constant.ClockFormat)
	r.Metadata.FromModel(model.Metadata)
}

type CheckAvailabilityRequest struct {
	VendorID  string `json:"vendor_id" validate:"required"`
	Date      string `json:"date"      validate:"required,dateonly"`
	ServiceID string `json:"service_id" validate:"omitempty"`
	PackageID string `json:"package_id" validate:"omitempty"`
}

type ConflictingBooking struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
}

type CheckAvailabilityResponse struct {
	Available           bool                 `json:"available"`
	AvailableSlots      []string             `json:"available_slots"`
	ConflictingBookings []ConflictingBooking `json:"conflicting_bookings"`
}
