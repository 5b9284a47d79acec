package validator_test

import (
	"strings"
	"testing"

	"fete/shared/validator"
)

type bookingTestStruct struct {
	CustomerName  string `validate:"required" json:"customer_name"`
	CustomerEmail string `validate:"required,email" json:"customer_email"`
	EventDate     string `validate:"required,dateonly" json:"event_date"`
	StartTime     string `validate:"required,clock" json:"start_time"`
	GuestCount    int    `validate:"gte=1,lte=10000" json:"guest_count"`
}

func validBooking() bookingTestStruct {
	return bookingTestStruct{
		CustomerName:  "Dewi Lestari",
		CustomerEmail: "dewi@example.com",
		EventDate:     "2026-09-12",
		StartTime:     "10:00",
		GuestCount:    150,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*bookingTestStruct)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(*bookingTestStruct) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(b *bookingTestStruct) { b.CustomerName = "" },
			expectError: true,
		},
		{
			name:        "invalid email",
			mutate:      func(b *bookingTestStruct) { b.CustomerEmail = "invalid-email" },
			expectError: true,
		},
		{
			name:        "guest count out of range",
			mutate:      func(b *bookingTestStruct) { b.GuestCount = 20000 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validBooking()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestClockValidation(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{
			name:        "valid clock value",
			value:       "09:30",
			expectError: false,
		},
		{
			name:        "midnight",
			value:       "00:00",
			expectError: false,
		},
		{
			name:        "hour out of range",
			value:       "25:00",
			expectError: true,
		},
		{
			name:        "missing minutes",
			value:       "09",
			expectError: true,
		},
		{
			name:        "not a clock value",
			value:       "morning",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "clock")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestDateOnlyValidation(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{
			name:        "valid date",
			value:       "2026-09-12",
			expectError: false,
		},
		{
			name:        "month out of range",
			value:       "2026-13-01",
			expectError: true,
		},
		{
			name:        "wrong layout",
			value:       "12/09/2026",
			expectError: true,
		},
		{
			name:        "not a date",
			value:       "someday",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "dateonly")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"customer_name":"Dewi Lestari","customer_email":"dewi@example.com","event_date":"2026-09-12","start_time":"10:00","guest_count":150}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"customer_name":"Dewi Lestari","customer_email":"invalid-email","event_date":"2026-09-12","start_time":"10:00","guest_count":150}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"customer_name":"Dewi Lestari","customer_email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data bookingTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &bookingTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
