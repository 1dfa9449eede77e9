package controllers

import (
	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func convertToServiceResponse(service models.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          service.ID,
		ServiceName: service.ServiceName,
		Price:       service.Price,
	}
}

func GetAllServices(c *gin.Context) {
	var serviceList []models.Service
	if err := config.DB.Order("service_id").Find(&serviceList).Error; err != nil {
		response.ServerError(c)
		return
	}

	serviceResponses := make([]dto.ServiceResponse, 0, len(serviceList))
	for _, service := range serviceList {
		serviceResponses = append(serviceResponses, convertToServiceResponse(service))
	}

	response.Success(c, serviceResponses)
}

func CreateService(c *gin.Context) {
	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	service := models.Service{
		ServiceName: request.ServiceName,
		Price:       request.Price,
	}

	if err := validator.ValidateService(&service); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var count int64
	if err := config.DB.Model(&models.Service{}).
		Where("service_name = ?", request.ServiceName).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Service name already exists")
		return
	}

	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertToServiceResponse(service))
}

func GetServiceDetail(c *gin.Context) {
	serviceId := c.Param("id")

	var service models.Service
	if err := config.DB.Where("service_id = ?", serviceId).First(&service).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToServiceResponse(service))
}

func UpdateService(c *gin.Context) {
	var request dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	service.ServiceName = request.ServiceName
	service.Price = request.Price

	if err := validator.ValidateService(&service); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToServiceResponse(service))
}
