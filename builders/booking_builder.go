package builders

import (
	"time"

	"hms/models"
)

// BookingBuilder assembles a booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

func (b *BookingBuilder) WithGuest(guestID uint) *BookingBuilder {
	b.booking.GuestID = guestID
	return b
}

func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

func (b *BookingBuilder) WithTotalAmount(totalAmount float64) *BookingBuilder {
	b.booking.TotalAmount = totalAmount
	return b
}

func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
