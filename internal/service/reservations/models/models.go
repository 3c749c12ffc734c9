package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ChangeStatusRequest запрос на смену статуса бронирования сотрудником
type ChangeStatusRequest struct {
	WorkerID      int64  `json:"workerId"`
	ReservationID int64  `json:"reservationId"`
	Status        string `json:"status"`
}

// Response модели

// LineItemResponse позиция бронирования
type LineItemResponse struct {
	ServiceName string `json:"name"`
	Quantity    int    `json:"quantity"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64              `json:"id"`
	CustomerID int64              `json:"customerId"`
	WorkerID   *int64             `json:"workerId,omitempty"`
	Datetime   time.Time          `json:"datetime"`
	Status     string             `json:"status"`
	Services   []LineItemResponse `json:"services"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		WorkerID:   r.WorkerID,
		Datetime:   r.Datetime,
		Status:     string(r.Status),
		Services:   make([]LineItemResponse, len(r.LineItems)),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	// Отдаем количество так, как оно участвует в расчете
	for i, item := range r.LineItems {
		resp.Services[i] = LineItemResponse{
			ServiceName: item.ServiceName,
			Quantity:    item.EffectiveQuantity(),
		}
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
