package services

import (
	"testing"

	"hms/constants"
	"hms/models"
)

func TestOutstandingBalance(t *testing.T) {
	booking := models.Booking{TotalAmount: 330}

	payments := []models.Payment{
		{Amount: 100, PaymentStatus: constants.PaymentStatusPaid},
		{Amount: 50, PaymentStatus: constants.PaymentStatusPaid},
		{Amount: 75, PaymentStatus: constants.PaymentStatusPending},
		{Amount: 40, PaymentStatus: constants.PaymentStatusFailed},
	}

	// Only Paid payments count toward the balance.
	if got := OutstandingBalance(booking, payments); got != 180 {
		t.Errorf("OutstandingBalance = %v, want 180", got)
	}
}

func TestOutstandingBalanceNoPayments(t *testing.T) {
	booking := models.Booking{TotalAmount: 250.50}
	if got := OutstandingBalance(booking, nil); got != 250.50 {
		t.Errorf("OutstandingBalance = %v, want 250.50", got)
	}
}

func TestOutstandingBalanceFullyPaid(t *testing.T) {
	booking := models.Booking{TotalAmount: 330}
	payments := []models.Payment{
		{Amount: 330, PaymentStatus: constants.PaymentStatusPaid},
	}
	if got := OutstandingBalance(booking, payments); got != 0 {
		t.Errorf("OutstandingBalance = %v, want 0", got)
	}
}
