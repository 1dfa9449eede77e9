package controllers

import (
	"fmt"
	"log"
	"time"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:            room.ID,
		HotelID:       room.HotelID,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		Status:        room.Status,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room := models.Room{
		HotelID:       request.HotelID,
		RoomNumber:    request.RoomNumber,
		RoomType:      request.RoomType,
		PricePerNight: request.PricePerNight,
		Status:        constants.RoomStatusAvailable,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ?", request.HotelID, request.RoomNumber).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Room number already exists in this hotel")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCaches(room.HotelID)
	response.Created(c, convertToRoomResponse(room))
}

func GetRoomDetail(c *gin.Context) {
	roomId := c.Param("id")

	var room models.Room
	if err := config.DB.Preload("Hotel").Where("room_id = ?", roomId).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{
		"room":  convertToRoomResponse(room),
		"hotel": convertToHotelResponse(room.Hotel),
	})
}

func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.RoomNumber = request.RoomNumber
	room.RoomType = request.RoomType
	room.PricePerNight = request.PricePerNight

	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCaches(room.HotelID)
	response.Success(c, convertToRoomResponse(room))
}

func ChangeRoomStatus(c *gin.Context) {
	var request dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCaches(room.HotelID)
	response.Success(c, convertToRoomResponse(room))
}

// GetAvailableRooms lists the rooms of a hotel free for [checkIn, checkOut).
// The persisted room status only pre-filters; the booking overlap check is
// the source of truth.
func GetAvailableRooms(c *gin.Context) {
	hotelId := c.Param("id")
	checkInStr := c.Query("checkIn")
	checkOutStr := c.Query("checkOut")

	if checkInStr == "" || checkOutStr == "" {
		response.BadRequest(c, "checkIn and checkOut are required")
		return
	}

	checkIn, checkOut, err := validator.ParseDateRange(checkInStr, checkOutStr)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, hotelId).Error; err != nil {
		response.NotFound(c)
		return
	}

	cacheKey := fmt.Sprintf("availability:%s:%s:%s", hotelId, checkInStr, checkOutStr)
	var cached []dto.RoomResponse
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && len(cached) > 0 {
		response.Success(c, cached)
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("hotel_id = ?", hotel.ID).Order("room_id").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Joins("JOIN room ON room.room_id = booking.room_id").
		Where("room.hotel_id = ?", hotel.ID).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	available, err := services.FindAvailableRooms(checkIn, checkOut, rooms, bookings)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(available))
	for _, room := range available {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, roomResponses, 5*time.Minute); err != nil {
		log.Printf("Failed to cache availability: %v", err)
	}

	response.Success(c, roomResponses)
}

func invalidateAvailabilityCaches(hotelID uint) {
	if err := services.DeleteKeysByPattern(config.Ctx, config.RedisClient, fmt.Sprintf("availability:%d:*", hotelID)); err != nil {
		log.Printf("Failed to drop availability cache keys: %v", err)
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "dashboard:stats")
}
