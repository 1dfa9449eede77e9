package dto

type CreateEmployeeRequest struct {
	HotelID   uint    `json:"hotelId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Role      string  `json:"role"`
	Salary    float64 `json:"salary"`
	HiredDate string  `json:"hiredDate,omitempty"`
}

type EmployeeResponse struct {
	ID        uint    `json:"id"`
	HotelID   uint    `json:"hotelId"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Salary    float64 `json:"salary"`
	HiredDate string  `json:"hiredDate,omitempty"`
}
