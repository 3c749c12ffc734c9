package open_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts"
)

const (
	msgUnauthorized = "требуется авторизация сотрудника"
	msgAlreadyOpen  = "смена уже открыта"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/worker/shift/open
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := handlers.WorkerIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /worker/shift/open - Worker identity missing")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	shift, err := h.service.Open(r.Context(), workerID)
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrAlreadyOpen):
			h.logger.Warn("POST /worker/shift/open - Shift already open: worker_id=%d", workerID)
			handlers.RespondBadRequest(w, msgAlreadyOpen)

		default:
			h.logger.Error("POST /worker/shift/open - Failed to open shift: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /worker/shift/open - Shift opened: worker_id=%d, shift_id=%d", workerID, shift.ID)
	handlers.RespondJSON(w, http.StatusCreated, shift)
}
