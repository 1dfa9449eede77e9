package models

import (
	"time"

	"hms/constants"

	"gorm.io/gorm"
)

type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey;column:payment_id"`
	BookingID     uint      `json:"bookingId" gorm:"not null;index"`
	PaymentDate   time.Time `json:"paymentDate" gorm:"type:date;not null"`
	Amount        float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentMethod string    `json:"paymentMethod" gorm:"size:10;not null"`
	PaymentStatus string    `json:"paymentStatus" gorm:"size:10;not null;default:'Paid';index"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Booking       Booking   `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Payment) TableName() string {
	return "payment"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = constants.PaymentStatusPaid
	}
	return nil
}
