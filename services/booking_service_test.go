package services

import (
	"testing"

	"hms/constants"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn, true},
		{constants.BookingStatusConfirmed, constants.BookingStatusCancelled, true},
		{constants.BookingStatusConfirmed, constants.BookingStatusCheckedOut, false},
		{constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut, true},
		{constants.BookingStatusCheckedIn, constants.BookingStatusCancelled, true},
		{constants.BookingStatusCheckedIn, constants.BookingStatusConfirmed, false},
		{constants.BookingStatusCheckedOut, constants.BookingStatusCheckedIn, false},
		{constants.BookingStatusCheckedOut, constants.BookingStatusCancelled, false},
		{constants.BookingStatusCancelled, constants.BookingStatusConfirmed, false},
		{constants.BookingStatusCancelled, constants.BookingStatusCheckedIn, false},
		{constants.BookingStatusConfirmed, constants.BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
