package models

import (
	"time"
)

type Hotel struct {
	ID        uint       `json:"id" gorm:"primaryKey;column:hotel_id"`
	Name      string     `json:"name" gorm:"size:150;not null;unique"`
	City      string     `json:"city" gorm:"size:100;not null;index"`
	Address   string     `json:"address" gorm:"size:255"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
	Rooms     []Room     `json:"rooms,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

func (Hotel) TableName() string {
	return "hotel"
}
