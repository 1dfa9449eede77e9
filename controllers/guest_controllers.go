package controllers

import (
	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToGuestResponse(guest models.Guest) dto.GuestResponse {
	phones := make([]dto.GuestPhoneResponse, 0, len(guest.Phones))
	for _, phone := range guest.Phones {
		phones = append(phones, dto.GuestPhoneResponse{
			Phone:     phone.Phone,
			PhoneType: phone.PhoneType,
		})
	}
	return dto.GuestResponse{
		ID:        guest.ID,
		Name:      guest.Name,
		Email:     guest.Email,
		Phones:    phones,
		CreatedAt: guest.CreatedAt,
	}
}

func CreateGuest(c *gin.Context) {
	var request dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest := models.Guest{
		Name:  request.Name,
		Email: request.Email,
	}
	for _, phone := range request.Phones {
		phoneType := phone.PhoneType
		if phoneType == "" {
			phoneType = constants.PhoneTypeMobile
		}
		guest.Phones = append(guest.Phones, models.GuestPhone{
			Phone:     phone.Phone,
			PhoneType: phoneType,
		})
	}

	if err := validator.ValidateGuest(&guest); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&guest).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertToGuestResponse(guest))
}

func GetGuestDetail(c *gin.Context) {
	guestId := c.Param("id")

	var guest models.Guest
	if err := config.DB.Preload("Phones").Where("guest_id = ?", guestId).First(&guest).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToGuestResponse(guest))
}

// SearchGuests finds guests by name, email or phone. A LIKE query narrows
// the candidate set, then fuzzy ranking orders it so near-misses in spelling
// still surface.
func SearchGuests(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	var candidates []models.Guest
	pattern := "%" + query + "%"
	if err := config.DB.Preload("Phones").
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Limit(200).
		Find(&candidates).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Fall back to fuzzy ranking over everyone when the LIKE query is empty
	if len(candidates) == 0 {
		if err := config.DB.Preload("Phones").Limit(1000).Find(&candidates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	matches := services.SearchGuests(query, candidates)

	guestResponses := make([]dto.GuestResponse, 0, len(matches))
	for _, guest := range matches {
		guestResponses = append(guestResponses, convertToGuestResponse(guest))
	}

	response.Success(c, guestResponses)
}

func GetGuestBookings(c *gin.Context) {
	guestId := c.Param("id")

	var guest models.Guest
	if err := config.DB.First(&guest, guestId).Error; err != nil {
		response.NotFound(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Guest").Preload("Room").Preload("ServiceUsages.Service").
		Where("guest_id = ?", guest.ID).
		Order("check_in_date DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}
