package dto

type CreatePaymentRequest struct {
	BookingID     uint    `json:"bookingId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

type PaymentResponse struct {
	ID            uint    `json:"id"`
	BookingID     uint    `json:"bookingId"`
	PaymentDate   string  `json:"paymentDate"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
}
