package get_worker_reservations

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
)

type ReservationService interface {
	GetWorkerReservations(ctx context.Context, workerID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
