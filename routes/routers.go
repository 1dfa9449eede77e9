package routes

import (
	"hms/constants"
	"hms/controllers"
	middlewares "hms/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	staff := middlewares.AuthMiddleware(constants.RoleReceptionist, constants.RoleManager, constants.RoleSuperAdmin)
	manager := middlewares.AuthMiddleware(constants.RoleManager, constants.RoleSuperAdmin)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/users", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.CreateUser)

	v1.GET("/hotels", controllers.GetAllHotels)
	v1.POST("/hotels", manager, controllers.CreateHotel)
	v1.GET("/hotels/:id", controllers.GetHotelDetail)
	v1.PUT("/hotels/:id", manager, controllers.UpdateHotel)
	v1.DELETE("/hotels/:id", manager, controllers.DeleteHotel)
	v1.GET("/hotels/:id/employees", staff, controllers.GetHotelEmployees)
	v1.GET("/hotels/:id/available-rooms", controllers.GetAvailableRooms)

	v1.POST("/employees", manager, controllers.CreateEmployee)
	v1.GET("/employees/:id", staff, controllers.GetEmployeeDetail)

	v1.POST("/rooms", manager, controllers.CreateRoom)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", manager, controllers.UpdateRoom)
	v1.PUT("/roomStatus", staff, controllers.ChangeRoomStatus)

	v1.POST("/guests", staff, controllers.CreateGuest)
	v1.GET("/guests/search", staff, controllers.SearchGuests)
	v1.GET("/guests/:id", staff, controllers.GetGuestDetail)
	v1.GET("/guests/:id/bookings", staff, controllers.GetGuestBookings)

	v1.POST("/bookings", staff, controllers.CreateBooking)
	v1.GET("/bookings/:id", staff, controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", staff, controllers.ChangeBookingStatus)
	v1.POST("/bookings/:id/services", staff, controllers.AddServiceToBooking)
	v1.GET("/bookings/:id/payments", staff, controllers.GetBookingPayments)

	v1.POST("/payments", staff, controllers.CreatePayment)

	v1.GET("/services", controllers.GetAllServices)
	v1.POST("/services", manager, controllers.CreateService)
	v1.GET("/services/:id", controllers.GetServiceDetail)
	v1.PUT("/serviceUpdate", manager, controllers.UpdateService)

	v1.GET("/dashboard", staff, controllers.GetDashboard)
}
