package builders

import (
	"testing"
	"time"

	"hms/constants"
)

func TestBookingBuilder(t *testing.T) {
	checkIn := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	booking := NewBookingBuilder().
		WithGuest(7).
		WithRoom(3).
		WithStay(checkIn, checkOut).
		WithStatus(constants.BookingStatusConfirmed).
		WithTotalAmount(400).
		Build()

	if booking.GuestID != 7 || booking.RoomID != 3 {
		t.Errorf("unexpected ids: guest %d, room %d", booking.GuestID, booking.RoomID)
	}
	if !booking.CheckInDate.Equal(checkIn) || !booking.CheckOutDate.Equal(checkOut) {
		t.Errorf("unexpected stay: %v to %v", booking.CheckInDate, booking.CheckOutDate)
	}
	if booking.Status != constants.BookingStatusConfirmed {
		t.Errorf("unexpected status: %s", booking.Status)
	}
	if booking.TotalAmount != 400 {
		t.Errorf("unexpected total: %v", booking.TotalAmount)
	}
}
