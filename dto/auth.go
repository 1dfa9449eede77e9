package dto

import (
	"time"

	"github.com/lib/pq"
)

type CreateUserRequest struct {
	Name        string        `json:"name" binding:"required"`
	Email       string        `json:"email" binding:"required"`
	Password    string        `json:"password" binding:"required"`
	PhoneNumber string        `json:"phoneNumber" binding:"required"`
	Role        int           `json:"role"`
	HotelIDs    pq.Int64Array `json:"hotelIds"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	UserID    uint      `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	UserPhone string    `json:"userPhone"`
	UserRole  int       `json:"userRole"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
