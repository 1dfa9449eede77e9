package dto

import "time"

type CreateBookingRequest struct {
	GuestID      uint   `json:"guestId" binding:"required"`
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// BookingStatusRequest moves a booking through the status machine. The
// total is derived and never accepted from the client.
type BookingStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type AddServiceRequest struct {
	ServiceID uint `json:"serviceId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type BookingGuestResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingRoomResponse struct {
	ID            uint    `json:"id"`
	HotelID       uint    `json:"hotelId"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
}

type ServiceUsageResponse struct {
	ServiceID   uint    `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
}

type BookingResponse struct {
	ID            uint                   `json:"id"`
	Guest         BookingGuestResponse   `json:"guest"`
	Room          BookingRoomResponse    `json:"room"`
	CheckInDate   string                 `json:"checkInDate"`
	CheckOutDate  string                 `json:"checkOutDate"`
	BookingDate   string                 `json:"bookingDate"`
	Status        string                 `json:"status"`
	TotalAmount   float64                `json:"totalAmount"`
	ServiceUsages []ServiceUsageResponse `json:"serviceUsages,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}
