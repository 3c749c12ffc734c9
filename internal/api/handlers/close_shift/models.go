package close_shift

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	closeShiftUC "github.com/m04kA/SMC-ShiftService/internal/usecase/close_shift"
)

// ShiftResponse HTTP response model закрытой смены
type ShiftResponse struct {
	ID           int64           `json:"id"`
	WorkerID     int64           `json:"workerId"`
	Date         string          `json:"date"`
	State        string          `json:"state"`
	OpenedAt     time.Time       `json:"openedAt"`
	ClosedAt     time.Time       `json:"closedAt"`
	TotalCount   int             `json:"totalCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *closeShiftUC.Response) *ShiftResponse {
	return &ShiftResponse{
		ID:           resp.ID,
		WorkerID:     resp.WorkerID,
		Date:         resp.DateKey,
		State:        string(domain.SessionClosed),
		OpenedAt:     resp.OpenedAt,
		ClosedAt:     resp.ClosedAt,
		TotalCount:   resp.TotalCount,
		TotalRevenue: resp.TotalRevenue,
	}
}
