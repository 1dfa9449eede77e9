package models

import (
	"time"
)

// ServiceUsage is metered consumption of a service within a booking.
type ServiceUsage struct {
	BookingID uint      `json:"bookingId" gorm:"primaryKey"`
	ServiceID uint      `json:"serviceId" gorm:"primaryKey;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Service   Service   `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

func (ServiceUsage) TableName() string {
	return "service_usage"
}
