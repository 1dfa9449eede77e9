package services

import (
	"testing"

	"hms/models"
)

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.004, 10.00},
		{10.006, 10.01},
		{10.996, 11.00},
		{-10.006, -10.01},
		{330, 330},
	}
	for _, tt := range tests {
		if got := RoundCurrency(tt.in); got != tt.want {
			t.Errorf("RoundCurrency(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNights(t *testing.T) {
	b := models.Booking{
		CheckInDate:  date(2024, 2, 1),
		CheckOutDate: date(2024, 2, 4),
	}
	if got := Nights(b); got != 3 {
		t.Errorf("Nights = %d, want 3", got)
	}
}

func TestRecalculateTotal(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2024, 2, 1),
		CheckOutDate: date(2024, 2, 4),
	}
	room := models.Room{PricePerNight: 100}
	usages := []models.ServiceUsage{
		{Quantity: 2, Service: models.Service{Price: 15}},
	}

	total, err := RecalculateTotal(booking, room, usages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 330 {
		t.Errorf("total = %v, want 330", total)
	}

	// Recomputing from the same inputs must give the same result; the
	// stored total is never an input.
	booking.TotalAmount = 999
	again, err := RecalculateTotal(booking, room, usages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != total {
		t.Errorf("recalculation not idempotent: %v then %v", total, again)
	}
}

func TestRecalculateTotalNoServices(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2024, 3, 10),
		CheckOutDate: date(2024, 3, 11),
	}
	room := models.Room{PricePerNight: 79.99}

	total, err := RecalculateTotal(booking, room, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 79.99 {
		t.Errorf("total = %v, want 79.99", total)
	}
}

func TestRecalculateTotalInvalidRange(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2024, 2, 4),
		CheckOutDate: date(2024, 2, 4),
	}
	if _, err := RecalculateTotal(booking, models.Room{PricePerNight: 100}, nil); err == nil {
		t.Error("expected error for zero-night booking")
	}
}

func TestRecalculateTotalRounding(t *testing.T) {
	booking := models.Booking{
		CheckInDate:  date(2024, 2, 1),
		CheckOutDate: date(2024, 2, 4),
	}
	room := models.Room{PricePerNight: 33.33}

	total, err := RecalculateTotal(booking, room, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 99.99 {
		t.Errorf("total = %v, want 99.99", total)
	}
}
