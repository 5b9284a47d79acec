package model

import (
	"time"

	"fete/shared/model"
)

const (
	TableName  = "vendor_schedules"
	EntityName = "schedule"

	FieldVendorID      = "vendor_id"
	FieldOpenSunday    = "open_sunday"
	FieldOpenMonday    = "open_monday"
	FieldOpenTuesday   = "open_tuesday"
	FieldOpenWednesday = "open_wednesday"
	FieldOpenThursday  = "open_thursday"
	FieldOpenFriday    = "open_friday"
	FieldOpenSaturday  = "open_saturday"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
)

// WeeklySchedule is a vendor's recurring working pattern: one open
// flag per weekday and a single daily working window. At most one row
// exists per vendor; a vendor without a row is closed on every date.
type WeeklySchedule struct {
	VendorID      string    `db:"vendor_id"`
	OpenSunday    bool      `db:"open_sunday"`
	OpenMonday    bool      `db:"open_monday"`
	OpenTuesday   bool      `db:"open_tuesday"`
	OpenWednesday bool      `db:"open_wednesday"`
	OpenThursday  bool      `db:"open_thursday"`
	OpenFriday    bool      `db:"open_friday"`
	OpenSaturday  bool      `db:"open_saturday"`
	StartTime     time.Time `db:"start_time"`
	EndTime       time.Time `db:"end_time"`
	model.Metadata
}

// OpenOn reports whether the vendor works on the given weekday.
func (s *WeeklySchedule) OpenOn(day time.Weekday) bool {
	switch day {
	case time.Sunday:
		return s.OpenSunday
	case time.Monday:
		return s.OpenMonday
	case time.Tuesday:
		return s.OpenTuesday
	case time.Wednesday:
		return s.OpenWednesday
	case time.Thursday:
		return s.OpenThursday
	case time.Friday:
		return s.OpenFriday
	case time.Saturday:
		return s.OpenSaturday
	default:
		return false
	}
}
