package get_shift_summary

import (
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
)

const (
	msgUnauthorized = "требуется авторизация сотрудника"
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

// Handle GET /api/v1/worker/shift/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := handlers.WorkerIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /worker/shift/summary - Worker identity missing")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	summary, err := h.service.GetSummary(r.Context(), workerID)
	if err != nil {
		h.logger.Error("GET /worker/shift/summary - Failed to get summary: worker_id=%d, error=%v", workerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /worker/shift/summary - Summary fetched: worker_id=%d, state=%s, reservations=%d",
		workerID, summary.State, len(summary.Reservations))
	handlers.RespondJSON(w, http.StatusOK, summary)
}
