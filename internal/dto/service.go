package dto

import "github.com/andikarp/hris-backend/internal/core/domain"

// CreateServiceRequest carries the fields needed to create a transport service.
type CreateServiceRequest struct {
	Name     string `json:"name" binding:"required"`
	Provider string `json:"provider" binding:"required"`
}

// UpdateServiceRequest carries the updatable fields of a transport service.
type UpdateServiceRequest struct {
	Name     *string `json:"name"`
	Provider *string `json:"provider"`
	IsActive *bool   `json:"isActive"`
}

// ServiceResponse is the API representation of a transport service.
type ServiceResponse struct {
	ServiceID string `json:"serviceID"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	IsActive  bool   `json:"isActive"`
}

// ListServicesResponse wraps the list of transport services.
type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ToServiceResponse converts a domain.Service.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID: s.ServiceID,
		Name:      s.Name,
		Provider:  s.Provider,
		IsActive:  s.IsActive,
	}
}

// ToListServicesResponse converts a slice of domain.Service.
func ToListServicesResponse(services []domain.Service) ListServicesResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(&services[i])
	}
	return ListServicesResponse{Services: out}
}
