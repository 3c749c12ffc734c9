package close_shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на закрытие смены
type Request struct {
	WorkerID int64 // ID сотрудника
}

// Response модель ответа с закрытой сменой
type Response struct {
	ID           int64           // ID смены
	WorkerID     int64           // ID сотрудника
	DateKey      string          // День смены (YYYY-MM-DD)
	OpenedAt     time.Time       // Время открытия
	ClosedAt     time.Time       // Время закрытия
	TotalCount   int             // Количество учтенных бронирований
	TotalRevenue decimal.Decimal // Выручка за смену
}
