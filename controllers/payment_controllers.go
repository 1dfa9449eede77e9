package controllers

import (
	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func convertToPaymentResponse(payment models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		PaymentDate:   payment.PaymentDate.Format(validator.DateLayout),
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		PaymentStatus: payment.PaymentStatus,
	}
}

func CreatePayment(c *gin.Context) {
	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	paymentService := services.NewPaymentService(config.DB)
	payment, err := paymentService.Record(request.BookingID, request.Amount, request.PaymentMethod)
	if err != nil {
		respondAppError(c, err)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "dashboard:stats")
	response.Created(c, convertToPaymentResponse(*payment))
}

func GetBookingPayments(c *gin.Context) {
	bookingId := c.Param("id")

	var booking models.Booking
	if err := config.DB.First(&booking, bookingId).Error; err != nil {
		response.NotFound(c)
		return
	}

	paymentService := services.NewPaymentService(config.DB)
	payments, err := paymentService.ListByBooking(booking.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		paymentResponses = append(paymentResponses, convertToPaymentResponse(payment))
	}

	response.Success(c, gin.H{
		"payments":    paymentResponses,
		"totalAmount": booking.TotalAmount,
		"outstanding": services.OutstandingBalance(booking, payments),
	})
}
