package services

import (
	"time"

	"hms/constants"
	"hms/errors"
	"hms/models"
)

// Overlaps reports whether a booking's stay intersects [checkIn, checkOut).
// Stays are half-open intervals: a check-out on day X never conflicts with a
// check-in on day X.
func Overlaps(b models.Booking, checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}

// FindAvailableRooms returns the rooms with no active booking overlapping
// [checkIn, checkOut). Rooms are expected to belong to a single hotel; rooms
// whose persisted status is not Available are excluded up front, but the
// overlap check against bookings is the source of truth. The status column
// is only a coarse flag and may be stale.
//
// Only Confirmed and Checked-In bookings occupy a room. Cancelled and
// Checked-Out bookings never block availability.
func FindAvailableRooms(checkIn, checkOut time.Time, rooms []models.Room, bookings []models.Booking) ([]models.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"check-out date must be after check-in date", errors.ErrInvalidDateRange)
	}

	blocked := make(map[uint]bool)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if Overlaps(b, checkIn, checkOut) {
			blocked[b.RoomID] = true
		}
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Status != constants.RoomStatusAvailable {
			continue
		}
		if !blocked[room.ID] {
			available = append(available, room)
		}
	}

	return available, nil
}
