package close_shift

import (
	"context"

	closeShiftUC "github.com/m04kA/SMC-ShiftService/internal/usecase/close_shift"
)

type CloseShiftUseCase interface {
	Execute(ctx context.Context, req *closeShiftUC.Request) (*closeShiftUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
