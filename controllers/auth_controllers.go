package controllers

import (
	"strings"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserPhone: user.PhoneNumber,
		UserRole:  user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

// CreateUser registers a staff login account.
func CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateEmail(request.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidatePassword(request.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).
		Where("email = ? OR phone_number = ?", strings.ToLower(request.Email), request.PhoneNumber).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Email or phone number already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       strings.ToLower(request.Email),
		Password:    string(hashed),
		PhoneNumber: request.PhoneNumber,
		Role:        request.Role,
		Status:      constants.UserStatusActive,
		HotelIDs:    request.HotelIDs,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dto.UserLoginResponse{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserPhone: user.PhoneNumber,
		UserRole:  user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}
