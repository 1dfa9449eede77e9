package models

import (
	"time"
)

type Service struct {
	ID            uint           `json:"id" gorm:"primaryKey;column:service_id"`
	ServiceName   string         `json:"serviceName" gorm:"size:150;not null;unique"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null;index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	ServiceUsages []ServiceUsage `json:"serviceUsages,omitempty" gorm:"foreignKey:ServiceID"`
}

func (Service) TableName() string {
	return "service"
}
