package services

import (
	"testing"
	"time"

	"hms/constants"
	"hms/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2024, 2, 1),
		CheckOutDate: date(2024, 2, 5),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical range", date(2024, 2, 1), date(2024, 2, 5), true},
		{"contained inside", date(2024, 2, 2), date(2024, 2, 4), true},
		{"overlapping tail", date(2024, 2, 4), date(2024, 2, 6), true},
		{"overlapping head", date(2024, 1, 30), date(2024, 2, 2), true},
		{"starts on check-out day", date(2024, 2, 5), date(2024, 2, 7), false},
		{"ends on check-in day", date(2024, 1, 28), date(2024, 2, 1), false},
		{"fully before", date(2024, 1, 10), date(2024, 1, 12), false},
		{"fully after", date(2024, 2, 10), date(2024, 2, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(booking, tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v",
					tt.checkIn.Format("2006-01-02"), tt.checkOut.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestFindAvailableRooms(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, RoomNumber: "101", Status: constants.RoomStatusAvailable},
		{ID: 2, RoomNumber: "102", Status: constants.RoomStatusAvailable},
		{ID: 3, RoomNumber: "103", Status: constants.RoomStatusMaintenance},
	}
	bookings := []models.Booking{
		{RoomID: 1, CheckInDate: date(2024, 2, 1), CheckOutDate: date(2024, 2, 5), Status: constants.BookingStatusConfirmed},
		{RoomID: 2, CheckInDate: date(2024, 2, 1), CheckOutDate: date(2024, 2, 5), Status: constants.BookingStatusCancelled},
	}

	available, err := FindAvailableRooms(date(2024, 2, 3), date(2024, 2, 6), rooms, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].ID != 2 {
		t.Fatalf("expected only room 102 available, got %+v", available)
	}
}

func TestFindAvailableRoomsBackToBack(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, RoomNumber: "101", Status: constants.RoomStatusAvailable},
	}
	bookings := []models.Booking{
		{RoomID: 1, CheckInDate: date(2024, 2, 1), CheckOutDate: date(2024, 2, 5), Status: constants.BookingStatusCheckedIn},
	}

	// A stay starting on another stay's check-out day does not conflict.
	available, err := FindAvailableRooms(date(2024, 2, 5), date(2024, 2, 7), rooms, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("expected back-to-back booking to be allowed, got %+v", available)
	}
}

func TestFindAvailableRoomsInactiveBookingsDoNotBlock(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, RoomNumber: "101", Status: constants.RoomStatusAvailable},
	}

	for _, status := range []string{constants.BookingStatusCancelled, constants.BookingStatusCheckedOut} {
		bookings := []models.Booking{
			{RoomID: 1, CheckInDate: date(2024, 2, 1), CheckOutDate: date(2024, 2, 5), Status: status},
		}
		available, err := FindAvailableRooms(date(2024, 2, 2), date(2024, 2, 4), rooms, bookings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(available) != 1 {
			t.Errorf("%s booking should not block availability", status)
		}
	}
}

func TestFindAvailableRoomsInvalidRange(t *testing.T) {
	if _, err := FindAvailableRooms(date(2024, 2, 5), date(2024, 2, 5), nil, nil); err == nil {
		t.Error("expected error for zero-length range")
	}
	if _, err := FindAvailableRooms(date(2024, 2, 5), date(2024, 2, 1), nil, nil); err == nil {
		t.Error("expected error for inverted range")
	}
}
