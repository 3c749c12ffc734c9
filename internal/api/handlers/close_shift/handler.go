package close_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	closeShiftUC "github.com/m04kA/SMC-ShiftService/internal/usecase/close_shift"
)

const (
	msgUnauthorized  = "требуется авторизация сотрудника"
	msgNoOpenSession = "нет открытой смены за сегодня"
)

type Handler struct {
	useCase CloseShiftUseCase
	logger  Logger
}

func NewHandler(useCase CloseShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/worker/shift/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := handlers.WorkerIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /worker/shift/close - Worker identity missing")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &closeShiftUC.Request{WorkerID: workerID})
	if err != nil {
		switch {
		case errors.Is(err, closeShiftUC.ErrNoOpenSession):
			h.logger.Warn("POST /worker/shift/close - No open shift: worker_id=%d", workerID)
			handlers.RespondBadRequest(w, msgNoOpenSession)

		default:
			h.logger.Error("POST /worker/shift/close - Failed to close shift: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /worker/shift/close - Shift closed: worker_id=%d, count=%d, revenue=%s",
		workerID, result.TotalCount, result.TotalRevenue.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
