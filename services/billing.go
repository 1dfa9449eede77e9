package services

import (
	"math"

	"hms/errors"
	"hms/models"
)

// RoundCurrency rounds to 2 decimal places, half away from zero.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Nights is the stay length in whole days.
func Nights(b models.Booking) int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// RecalculateTotal derives a booking's total from its current inputs:
// nights times the room's nightly rate, plus quantity times unit price for
// every service usage. The stored total_amount is never an input; the
// result fully replaces it.
func RecalculateTotal(booking models.Booking, room models.Room, usages []models.ServiceUsage) (float64, error) {
	nights := Nights(booking)
	if nights <= 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"check-out date must be after check-in date", errors.ErrInvalidDateRange)
	}

	roomTotal := float64(nights) * room.PricePerNight

	servicesTotal := 0.0
	for _, usage := range usages {
		servicesTotal += float64(usage.Quantity) * usage.Service.Price
	}

	return RoundCurrency(roomTotal + servicesTotal), nil
}
