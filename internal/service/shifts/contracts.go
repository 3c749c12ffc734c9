package shifts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByWorkerAndDate(ctx context.Context, workerID int64, dateKey string) (*domain.WorkSession, error)
	Open(ctx context.Context, workerID int64, dateKey string, openedAt time.Time) (*domain.WorkSession, error)
}

// ReservationLedger интерфейс журнала бронирований
type ReservationLedger interface {
	FindForWorkerOnDate(ctx context.Context, workerID int64, dateKey string, statuses ...domain.ReservationStatus) ([]*domain.Reservation, error)
}

// Clock источник текущего дня в канонической временной зоне
type Clock interface {
	Now() time.Time
	Today() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
