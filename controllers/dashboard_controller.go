package controllers

import (
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

// GetDashboard returns the front-desk overview: record counts, occupancy,
// revenue and the latest bookings.
func GetDashboard(c *gin.Context) {
	cacheKey := "dashboard:stats"

	var cached dto.DashboardResponse
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && cached.Stats.TotalRooms > 0 {
		response.Success(c, cached)
		return
	}

	db := config.DB
	var stats dto.DashboardStats

	if err := db.Model(&models.Hotel{}).Count(&stats.TotalHotels).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := db.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := db.Model(&models.Guest{}).Count(&stats.TotalGuests).Error; err != nil {
		response.ServerError(c)
		return
	}

	activeStatuses := []string{constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn}
	if err := db.Model(&models.Booking{}).Where("status IN ?", activeStatuses).Count(&stats.ActiveBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	today := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 0, 0, 0, 0, time.Local)

	if err := db.Model(&models.Booking{}).
		Where("status = ?", constants.BookingStatusCheckedIn).
		Count(&stats.OccupiedRooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := db.Model(&models.Room{}).
		Where("status = ?", constants.RoomStatusMaintenance).
		Count(&stats.RoomsInService).Error; err != nil {
		response.ServerError(c)
		return
	}

	row := db.Model(&models.Payment{}).
		Where("payment_status = ?", constants.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&stats.TotalRevenue); err != nil {
		response.ServerError(c)
		return
	}

	row = db.Model(&models.Booking{}).
		Where("status IN ?", activeStatuses).
		Select("COALESCE(SUM(total_amount), 0)").Row()
	var activeTotal float64
	if err := row.Scan(&activeTotal); err != nil {
		response.ServerError(c)
		return
	}
	stats.PendingBalance = services.RoundCurrency(activeTotal - stats.TotalRevenue)
	if stats.PendingBalance < 0 {
		stats.PendingBalance = 0
	}

	if err := db.Model(&models.Payment{}).Where("payment_date = ?", today).Count(&stats.PaymentsToday).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := db.Model(&models.Booking{}).Where("check_in_date = ?", today).Count(&stats.CheckInsToday).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := db.Model(&models.Booking{}).Where("check_out_date = ?", today).Count(&stats.CheckOutsToday).Error; err != nil {
		response.ServerError(c)
		return
	}

	var recent []models.Booking
	if err := db.Preload("Guest").Preload("Room.Hotel").
		Order("created_at DESC").Limit(10).Find(&recent).Error; err != nil {
		response.ServerError(c)
		return
	}

	recentBookings := make([]dto.RecentBooking, 0, len(recent))
	for _, booking := range recent {
		recentBookings = append(recentBookings, dto.RecentBooking{
			ID:           booking.ID,
			GuestName:    booking.Guest.Name,
			RoomNumber:   booking.Room.RoomNumber,
			HotelName:    booking.Room.Hotel.Name,
			CheckInDate:  booking.CheckInDate.Format(validator.DateLayout),
			CheckOutDate: booking.CheckOutDate.Format(validator.DateLayout),
			Status:       booking.Status,
			TotalAmount:  booking.TotalAmount,
		})
	}

	dashboard := dto.DashboardResponse{
		Stats:          stats,
		RecentBookings: recentBookings,
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, dashboard, 5*time.Minute); err != nil {
		log.Printf("Failed to cache dashboard stats: %v", err)
	}

	response.Success(c, dashboard)
}
