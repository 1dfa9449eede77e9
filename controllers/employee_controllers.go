package controllers

import (
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func convertToEmployeeResponse(emp models.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:      emp.ID,
		HotelID: emp.HotelID,
		Name:    emp.Name,
		Role:    emp.Role,
		Salary:  emp.Salary,
	}
	if emp.HiredDate != nil {
		resp.HiredDate = emp.HiredDate.Format(validator.DateLayout)
	}
	return resp
}

func CreateEmployee(c *gin.Context) {
	var request dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee := models.Employee{
		HotelID: request.HotelID,
		Name:    request.Name,
		Role:    request.Role,
		Salary:  request.Salary,
	}

	if request.HiredDate != "" {
		hired, err := time.Parse(validator.DateLayout, request.HiredDate)
		if err != nil {
			response.BadRequest(c, "Invalid hired date, use YYYY-MM-DD")
			return
		}
		employee.HiredDate = &hired
	}

	if err := validator.ValidateEmployee(&employee); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertToEmployeeResponse(employee))
}

func GetEmployeeDetail(c *gin.Context) {
	empId := c.Param("id")

	var employee models.Employee
	if err := config.DB.Where("emp_id = ?", empId).First(&employee).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToEmployeeResponse(employee))
}

func GetHotelEmployees(c *gin.Context) {
	hotelId := c.Param("id")

	var employees []models.Employee
	if err := config.DB.Where("hotel_id = ?", hotelId).Order("emp_id").Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	employeeResponses := make([]dto.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		employeeResponses = append(employeeResponses, convertToEmployeeResponse(emp))
	}

	response.Success(c, employeeResponses)
}
