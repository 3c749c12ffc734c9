package get_shift_summary

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

type ShiftService interface {
	GetSummary(ctx context.Context, workerID int64) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
