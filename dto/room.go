package dto

import "time"

type CreateRoomRequest struct {
	HotelID       uint    `json:"hotelId" binding:"required"`
	RoomNumber    string  `json:"roomNumber" binding:"required"`
	RoomType      string  `json:"roomType" binding:"required"`
	PricePerNight float64 `json:"pricePerNight" binding:"required"`
}

// UpdateRoomRequest enumerates exactly the mutable room fields. Status
// changes go through RoomStatusRequest instead.
type UpdateRoomRequest struct {
	ID            uint    `json:"id" binding:"required"`
	RoomNumber    string  `json:"roomNumber" binding:"required"`
	RoomType      string  `json:"roomType" binding:"required"`
	PricePerNight float64 `json:"pricePerNight" binding:"required"`
}

type RoomStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type RoomResponse struct {
	ID            uint      `json:"id"`
	HotelID       uint      `json:"hotelId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
