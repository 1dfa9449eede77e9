package validator

import (
	"testing"

	"hms/models"
)

func TestParseDateRange(t *testing.T) {
	checkIn, checkOut, err := ParseDateRange("2024-02-01", "2024-02-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !checkOut.After(checkIn) {
		t.Error("expected check-out after check-in")
	}

	if _, _, err := ParseDateRange("2024-02-05", "2024-02-05"); err == nil {
		t.Error("expected error for equal dates")
	}
	if _, _, err := ParseDateRange("2024-02-05", "2024-02-01"); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, _, err := ParseDateRange("05/02/2024", "2024-02-07"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestValidateRoom(t *testing.T) {
	room := models.Room{HotelID: 1, RoomNumber: "101", RoomType: "Deluxe", PricePerNight: 120, Status: "Available"}
	if err := ValidateRoom(&room); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := room
	bad.PricePerNight = 0
	if err := ValidateRoom(&bad); err == nil {
		t.Error("expected error for non-positive price")
	}

	bad = room
	bad.Status = "Closed"
	if err := ValidateRoom(&bad); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestValidateGuest(t *testing.T) {
	guest := models.Guest{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phones: []models.GuestPhone{
			{Phone: "+919876543210", PhoneType: "Mobile"},
		},
	}
	if err := ValidateGuest(&guest); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := guest
	bad.Email = "not-an-email"
	if err := ValidateGuest(&bad); err == nil {
		t.Error("expected error for invalid email")
	}

	bad = guest
	bad.Phones = []models.GuestPhone{{Phone: "12ab", PhoneType: "Mobile"}}
	if err := ValidateGuest(&bad); err == nil {
		t.Error("expected error for invalid phone")
	}

	bad = guest
	bad.Phones = []models.GuestPhone{{Phone: "+919876543210", PhoneType: "Pager"}}
	if err := ValidateGuest(&bad); err == nil {
		t.Error("expected error for unknown phone type")
	}
}

func TestValidateService(t *testing.T) {
	svc := models.Service{ServiceName: "Laundry", Price: 15}
	if err := ValidateService(&svc); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	svc.Price = -1
	if err := ValidateService(&svc); err == nil {
		t.Error("expected error for negative price")
	}
}
