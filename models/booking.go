package models

import (
	"fmt"
	"time"

	"hms/constants"

	"gorm.io/gorm"
)

type Booking struct {
	ID            uint           `json:"id" gorm:"primaryKey;column:booking_id"`
	GuestID       uint           `json:"guestId" gorm:"not null;index"`
	RoomID        uint           `json:"roomId" gorm:"not null;index"`
	CheckInDate   time.Time      `json:"checkInDate" gorm:"type:date;not null;index:idx_booking_dates"`
	CheckOutDate  time.Time      `json:"checkOutDate" gorm:"type:date;not null;index:idx_booking_dates"`
	BookingDate   time.Time      `json:"bookingDate" gorm:"type:date;not null"`
	Status        string         `json:"status" gorm:"size:20;not null;default:'Confirmed'"`
	TotalAmount   float64        `json:"totalAmount" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Guest         Guest          `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	Room          Room           `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Payments      []Payment      `json:"payments,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	ServiceUsages []ServiceUsage `json:"serviceUsages,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

func (Booking) TableName() string {
	return "booking"
}

// IsActive reports whether the booking occupies its room for availability
// purposes.
func (b *Booking) IsActive() bool {
	return b.Status == constants.BookingStatusConfirmed || b.Status == constants.BookingStatusCheckedIn
}

func (b *Booking) ValidateStatus() error {
	switch b.Status {
	case constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn,
		constants.BookingStatusCheckedOut, constants.BookingStatusCancelled:
		return nil
	}
	return fmt.Errorf("invalid status: %s", b.Status)
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now()
	}
	if b.Status == "" {
		b.Status = constants.BookingStatusConfirmed
	}
	if !b.CheckOutDate.After(b.CheckInDate) {
		return fmt.Errorf("check-out date must be after check-in date")
	}
	return nil
}
