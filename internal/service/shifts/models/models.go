package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	reservationModels "github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
)

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ID           int64           `json:"id"`
	WorkerID     int64           `json:"workerId"`
	Date         string          `json:"date"`
	State        string          `json:"state"`
	OpenedAt     time.Time       `json:"openedAt"`
	ClosedAt     *time.Time      `json:"closedAt,omitempty"`
	TotalCount   int             `json:"totalCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// SummaryResponse сводка по смене за текущий день
type SummaryResponse struct {
	Date         string                                  `json:"date"`
	State        string                                  `json:"state"`
	Shift        *ShiftResponse                          `json:"shift"`
	Reservations []reservationModels.ReservationResponse `json:"reservations"`
}

// FromDomainShift конвертирует domain модель в DTO
func FromDomainShift(s *domain.WorkSession) *ShiftResponse {
	if s == nil {
		return nil
	}

	return &ShiftResponse{
		ID:           s.ID,
		WorkerID:     s.WorkerID,
		Date:         s.DateKey,
		State:        string(domain.StateOf(s)),
		OpenedAt:     s.OpenedAt,
		ClosedAt:     s.ClosedAt,
		TotalCount:   s.TotalCount,
		TotalRevenue: s.TotalRevenue,
	}
}

// NewSummaryResponse собирает сводку; session может быть nil
func NewSummaryResponse(dateKey string, session *domain.WorkSession, reservations []*domain.Reservation) *SummaryResponse {
	return &SummaryResponse{
		Date:         dateKey,
		State:        string(domain.StateOf(session)),
		Shift:        FromDomainShift(session),
		Reservations: reservationModels.FromDomainReservationList(reservations).Reservations,
	}
}
