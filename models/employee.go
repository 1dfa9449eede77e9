package models

import (
	"time"
)

type Employee struct {
	ID        uint       `json:"id" gorm:"primaryKey;column:emp_id"`
	HotelID   uint       `json:"hotelId" gorm:"not null;index"`
	Name      string     `json:"name" gorm:"size:150;not null"`
	Role      string     `json:"role" gorm:"size:100;index"`
	Salary    float64    `json:"salary" gorm:"type:decimal(12,2)"`
	HiredDate *time.Time `json:"hiredDate,omitempty" gorm:"type:date"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel     Hotel      `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (Employee) TableName() string {
	return "employee"
}
