package controllers

import (
	"fmt"
	"log"
	"strconv"

	"hms/config"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	usages := make([]dto.ServiceUsageResponse, 0, len(booking.ServiceUsages))
	for _, usage := range booking.ServiceUsages {
		usages = append(usages, dto.ServiceUsageResponse{
			ServiceID:   usage.ServiceID,
			ServiceName: usage.Service.ServiceName,
			UnitPrice:   usage.Service.Price,
			Quantity:    usage.Quantity,
		})
	}

	return dto.BookingResponse{
		ID: booking.ID,
		Guest: dto.BookingGuestResponse{
			ID:    booking.Guest.ID,
			Name:  booking.Guest.Name,
			Email: booking.Guest.Email,
		},
		Room: dto.BookingRoomResponse{
			ID:            booking.Room.ID,
			HotelID:       booking.Room.HotelID,
			RoomNumber:    booking.Room.RoomNumber,
			RoomType:      booking.Room.RoomType,
			PricePerNight: booking.Room.PricePerNight,
		},
		CheckInDate:   booking.CheckInDate.Format(validator.DateLayout),
		CheckOutDate:  booking.CheckOutDate.Format(validator.DateLayout),
		BookingDate:   booking.BookingDate.Format(validator.DateLayout),
		Status:        booking.Status,
		TotalAmount:   booking.TotalAmount,
		ServiceUsages: usages,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

// respondAppError maps service errors onto HTTP responses
func respondAppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeDBNotFound:
		response.NotFound(c)
	case apperrors.ErrCodeRoomNotAvailable, apperrors.ErrCodeDuplicateService:
		response.Conflict(c, appErr.Message)
	case apperrors.ErrCodeInvalidDateRange, apperrors.ErrCodeInvalidTransition,
		apperrors.ErrCodeInvalidAmount, apperrors.ErrCodeInvalidStatus,
		apperrors.ErrCodeOverpayment, apperrors.ErrCodeValidation:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checkIn, checkOut, err := validator.ParseDateRange(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookingService := services.NewBookingService(config.DB)
	booking, err := bookingService.Create(request.GuestID, request.RoomID, checkIn, checkOut)
	if err != nil {
		respondAppError(c, err)
		return
	}

	full, err := bookingService.GetByID(booking.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(full.Room.HotelID)
	response.Created(c, convertToBookingResponse(*full))
}

func GetBookingDetail(c *gin.Context) {
	bookingId, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	bookingService := services.NewBookingService(config.DB)
	booking, err := bookingService.GetByID(uint(bookingId))
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

func ChangeBookingStatus(c *gin.Context) {
	var request dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bookingService := services.NewBookingService(config.DB)
	booking, err := bookingService.ChangeStatus(request.ID, request.Status)
	if err != nil {
		respondAppError(c, err)
		return
	}

	full, err := bookingService.GetByID(booking.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(full.Room.HotelID)
	response.Success(c, convertToBookingResponse(*full))
}

// AddServiceToBooking meters a service against a booking and returns the
// booking with its recalculated total.
func AddServiceToBooking(c *gin.Context) {
	bookingId, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var request dto.AddServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bookingService := services.NewBookingService(config.DB)
	if _, err := bookingService.AddService(uint(bookingId), request.ServiceID, request.Quantity); err != nil {
		respondAppError(c, err)
		return
	}

	full, err := bookingService.GetByID(uint(bookingId))
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCaches(full.Room.HotelID)
	response.Success(c, convertToBookingResponse(*full))
}

func invalidateBookingCaches(hotelID uint) {
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "dashboard:stats")
	if err := services.DeleteKeysByPattern(config.Ctx, config.RedisClient, fmt.Sprintf("availability:%d:*", hotelID)); err != nil {
		log.Printf("Failed to drop availability cache keys: %v", err)
	}
}
