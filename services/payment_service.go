package services

import (
	stderrors "errors"

	"hms/constants"
	"hms/errors"
	"hms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentService records payments against bookings.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// OutstandingBalance is the booking total minus everything already paid.
func OutstandingBalance(booking models.Booking, payments []models.Payment) float64 {
	paid := 0.0
	for _, p := range payments {
		if p.PaymentStatus == constants.PaymentStatusPaid {
			paid += p.Amount
		}
	}
	return RoundCurrency(booking.TotalAmount - paid)
}

// Record creates a payment for a booking. A payment may not exceed the
// outstanding balance; the booking row is locked so concurrent payments
// cannot both fit inside the same remainder.
func (s *PaymentService) Record(bookingID uint, amount float64, method string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "amount must be positive", errors.ErrInvalidAmount)
	}
	switch method {
	case constants.PaymentMethodCash, constants.PaymentMethodCard, constants.PaymentMethodUPI:
	default:
		return nil, errors.NewAppError(errors.ErrCodeValidation, "unknown payment method: "+method, nil)
	}

	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
			}
			return err
		}

		var payments []models.Payment
		if err := tx.Where("booking_id = ?", bookingID).Find(&payments).Error; err != nil {
			return err
		}

		if RoundCurrency(amount) > OutstandingBalance(booking, payments) {
			return errors.NewAppError(errors.ErrCodeOverpayment,
				"payment exceeds outstanding balance", errors.ErrOverpayment)
		}

		payment = models.Payment{
			BookingID:     bookingID,
			Amount:        RoundCurrency(amount),
			PaymentMethod: method,
			PaymentStatus: constants.PaymentStatusPaid,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByBooking returns all payments for a booking.
func (s *PaymentService) ListByBooking(bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("booking_id = ?", bookingID).Order("payment_date").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
