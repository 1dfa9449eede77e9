package dto

import "time"

type GuestPhoneRequest struct {
	Phone     string `json:"phone" binding:"required"`
	PhoneType string `json:"phoneType"`
}

type CreateGuestRequest struct {
	Name   string              `json:"name" binding:"required"`
	Email  string              `json:"email"`
	Phones []GuestPhoneRequest `json:"phones"`
}

type GuestPhoneResponse struct {
	Phone     string `json:"phone"`
	PhoneType string `json:"phoneType"`
}

type GuestResponse struct {
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phones    []GuestPhoneResponse `json:"phones"`
	CreatedAt time.Time            `json:"createdAt"`
}
