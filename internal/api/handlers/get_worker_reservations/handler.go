package get_worker_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
)

const (
	msgUnauthorized = "требуется авторизация сотрудника"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/worker/reservations
// Возвращает свои бронирования сотрудника и неназначенные ожидающие.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := handlers.WorkerIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /worker/reservations - Worker identity missing")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetWorkerReservations(r.Context(), workerID)
	if err != nil {
		h.logger.Error("GET /worker/reservations - Failed to get reservations: worker_id=%d, error=%v", workerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /worker/reservations - Reservations fetched: worker_id=%d, count=%d",
		workerID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
