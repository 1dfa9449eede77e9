package models

import (
	"time"
)

type Guest struct {
	ID        uint         `json:"id" gorm:"primaryKey;column:guest_id"`
	Name      string       `json:"name" gorm:"size:150;not null;index"`
	Email     string       `json:"email" gorm:"size:150;unique"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	Phones    []GuestPhone `json:"phones" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	Bookings  []Booking    `json:"bookings,omitempty" gorm:"foreignKey:GuestID"`
}

func (Guest) TableName() string {
	return "guest"
}

type GuestPhone struct {
	GuestID   uint   `json:"guestId" gorm:"primaryKey"`
	Phone     string `json:"phone" gorm:"primaryKey;size:30;index"`
	PhoneType string `json:"phoneType" gorm:"size:10;default:'Mobile'"`
}

func (GuestPhone) TableName() string {
	return "guest_phone"
}
