package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainCatalog конвертирует записи каталога в DTO
func FromDomainCatalog(entries []domain.ServiceCatalogEntry) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, len(entries)),
	}

	for i, e := range entries {
		resp.Services[i] = ServiceResponse{Name: e.Name, Price: e.Price}
	}

	return resp
}
