package models

import (
	"fmt"
	"time"

	"hms/constants"
)

type Room struct {
	ID            uint      `json:"id" gorm:"primaryKey;column:room_id"`
	HotelID       uint      `json:"hotelId" gorm:"not null;index:idx_room_hotel;uniqueIndex:uq_room_unique"`
	RoomNumber    string    `json:"roomNumber" gorm:"size:20;not null;uniqueIndex:uq_room_unique"`
	RoomType      string    `json:"roomType" gorm:"size:50;not null;index"`
	PricePerNight float64   `json:"pricePerNight" gorm:"type:decimal(10,2);not null"`
	Status        string    `json:"status" gorm:"size:20;not null;default:'Available'"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel         Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Bookings      []Booking `json:"bookings,omitempty" gorm:"foreignKey:RoomID"`
}

func (Room) TableName() string {
	return "room"
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusBooked, constants.RoomStatusMaintenance:
		return nil
	}
	return fmt.Errorf("invalid status: %s", r.Status)
}
