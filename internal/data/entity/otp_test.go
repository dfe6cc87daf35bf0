package entity

import (
	"testing"
	"time"
)

func TestRegistrationOTPIsValid(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	otp := &RegistrationOTP{Code: "1234"}
	otp.CreatedAt = issued

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just issued", issued, true},
		{"one minute in", issued.Add(time.Minute), true},
		{"exactly at the boundary", issued.Add(OTPValidity), true},
		{"one second past", issued.Add(OTPValidity + time.Second), false},
		{"an hour later", issued.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := otp.IsValid(tt.now); got != tt.want {
				t.Errorf("IsValid(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
