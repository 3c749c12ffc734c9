package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	FindByWorkerAndDateRange(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	FindVisibleToWorker(ctx context.Context, workerID int64) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, expected, next domain.ReservationStatus, assignTo *int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock вычисляет границы календарного дня в канонической временной зоне
type Clock interface {
	DayBounds(dateKey string) (time.Time, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
