package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToHotelResponse(hotel models.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		City:      hotel.City,
		Address:   hotel.Address,
		CreatedAt: hotel.CreatedAt,
		UpdatedAt: hotel.UpdatedAt,
	}
}

func GetAllHotels(c *gin.Context) {
	cacheKey := "hotels:all"

	var allHotels []models.Hotel
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &allHotels); err != nil || len(allHotels) == 0 {
		if err := config.DB.Order("hotel_id").Find(&allHotels).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, allHotels, 10*time.Minute); err != nil {
			log.Printf("Failed to cache hotel list: %v", err)
		}
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	cityFilter := c.Query("city")
	filtered := make([]models.Hotel, 0, len(allHotels))
	for _, hotel := range allHotels {
		if cityFilter != "" && hotel.City != cityFilter {
			continue
		}
		filtered = append(filtered, hotel)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Hotel{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	hotelResponses := make([]dto.HotelResponse, 0, len(filtered))
	for _, hotel := range filtered {
		hotelResponses = append(hotelResponses, convertToHotelResponse(hotel))
	}

	response.SuccessWithPagination(c, hotelResponses, page, limit, total)
}

func CreateHotel(c *gin.Context) {
	var request dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hotel := models.Hotel{
		Name:    request.Name,
		City:    request.City,
		Address: request.Address,
	}

	if err := validator.ValidateHotel(&hotel); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Hotel name already exists")
			return
		}
		response.ServerError(c)
		return
	}

	invalidateHotelCaches()
	response.Created(c, convertToHotelResponse(hotel))
}

func GetHotelDetail(c *gin.Context) {
	hotelId := c.Param("id")

	var hotel models.Hotel
	if err := config.DB.Preload("Rooms").Where("hotel_id = ?", hotelId).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(hotel.Rooms))
	for _, room := range hotel.Rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, gin.H{
		"hotel": convertToHotelResponse(hotel),
		"rooms": roomResponses,
	})
}

func UpdateHotel(c *gin.Context) {
	hotelId := c.Param("id")

	var request dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var hotel models.Hotel
	if err := config.DB.Where("hotel_id = ?", hotelId).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	hotel.Name = request.Name
	hotel.City = request.City
	hotel.Address = request.Address

	if err := validator.ValidateHotel(&hotel); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHotelCaches()
	response.Success(c, convertToHotelResponse(hotel))
}

func DeleteHotel(c *gin.Context) {
	hotelId := c.Param("id")

	var hotel models.Hotel
	if err := config.DB.Where("hotel_id = ?", hotelId).First(&hotel).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateHotelCaches()
	response.Success(c, gin.H{"message": "Hotel deleted"})
}

func invalidateHotelCaches() {
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "hotels:all")
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "dashboard:stats")
	if err := services.DeleteKeysByPattern(config.Ctx, config.RedisClient, "availability:*"); err != nil {
		log.Printf("Failed to drop availability cache keys: %v", err)
	}
}
