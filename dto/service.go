package dto

type CreateServiceRequest struct {
	ServiceName string  `json:"serviceName" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	ID          uint    `json:"id" binding:"required"`
	ServiceName string  `json:"serviceName" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type ServiceResponse struct {
	ID          uint    `json:"id"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
}
