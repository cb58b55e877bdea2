package validator_test

import (
	"strings"
	"testing"

	"github.com/Lynxxxc/RESERVASI/shared/validator"
)

type bookingForm struct {
	Name      string `validate:"required,max=100" json:"name"`
	Date      string `validate:"required,date"    json:"date"`
	StartTime string `validate:"required,timeofday" json:"startTime"`
	NumGuests int    `validate:"required,min=1"   json:"numGuests"`
}

func validForm() bookingForm {
	return bookingForm{
		Name:      "Alice",
		Date:      "2025-03-10",
		StartTime: "09:00",
		NumGuests: 2,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*bookingForm)
		expectError bool
	}{
		{
			name:        "valid form",
			mutate:      func(*bookingForm) {},
			expectError: false,
		},
		{
			name:        "missing name",
			mutate:      func(f *bookingForm) { f.Name = "" },
			expectError: true,
		},
		{
			name:        "date in wrong order",
			mutate:      func(f *bookingForm) { f.Date = "10-03-2025" },
			expectError: true,
		},
		{
			name:        "date with textual month",
			mutate:      func(f *bookingForm) { f.Date = "2025-Mar-10" },
			expectError: true,
		},
		{
			name:        "time without minutes",
			mutate:      func(f *bookingForm) { f.StartTime = "9" },
			expectError: true,
		},
		{
			name:        "time with meridiem",
			mutate:      func(f *bookingForm) { f.StartTime = "9:00am" },
			expectError: true,
		},
		{
			name:        "midnight is a valid time",
			mutate:      func(f *bookingForm) { f.StartTime = "00:00" },
			expectError: false,
		},
		{
			name:        "zero guests",
			mutate:      func(f *bookingForm) { f.NumGuests = 0 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid json body",
			body:        `{"name":"Alice","date":"2025-03-10","startTime":"09:00","numGuests":2}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"name":"Alice","date":"tomorrow","startTime":"09:00","numGuests":2}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form bookingForm
			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateMessage(t *testing.T) {
	var form bookingForm
	form.Name = "Alice"
	form.Date = "not-a-date"
	form.StartTime = "09:00"
	form.NumGuests = 1

	err := validator.ValidateStruct(&form)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Errorf("expected message to mention the expected date format, got %s", err.Error())
	}
}
