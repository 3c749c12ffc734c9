package update_reservation_status

import (
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(workerID, reservationID int64) *models.ChangeStatusRequest {
	return &models.ChangeStatusRequest{
		WorkerID:      workerID,
		ReservationID: reservationID,
		Status:        r.Status,
	}
}
