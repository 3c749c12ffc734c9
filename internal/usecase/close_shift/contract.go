package close_shift

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByWorkerAndDate(ctx context.Context, workerID int64, dateKey string) (*domain.WorkSession, error)
	Close(ctx context.Context, workerID int64, dateKey string, settlement domain.Settlement, closedAt time.Time) (*domain.WorkSession, error)
}

// ReservationLedger интерфейс журнала бронирований
type ReservationLedger interface {
	FindForWorkerOnDate(ctx context.Context, workerID int64, dateKey string, statuses ...domain.ReservationStatus) ([]*domain.Reservation, error)
}

// PricingResolver отдает цены каталога на момент вызова
type PricingResolver interface {
	Snapshot(ctx context.Context) (domain.PriceSnapshot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock источник текущего дня в канонической временной зоне
type Clock interface {
	Now() time.Time
	Today() string
}

// SettlementRecorder фиксирует метрики закрытия смены
type SettlementRecorder interface {
	ObserveSettlement(count int, revenue float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
