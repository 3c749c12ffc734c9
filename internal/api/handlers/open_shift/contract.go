package open_shift

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

type ShiftService interface {
	Open(ctx context.Context, workerID int64) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
