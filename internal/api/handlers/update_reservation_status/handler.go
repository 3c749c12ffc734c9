package update_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations"
)

const (
	msgUnauthorized         = "требуется авторизация сотрудника"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус бронирования"
	msgInvalidTransition    = "недопустимая смена статуса бронирования"
	msgNotAssigned          = "бронирование назначено другому сотруднику"
	msgNotFound             = "бронирование не найдено"
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

// Handle PATCH /api/v1/worker/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := handlers.WorkerIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /worker/reservations/{id}/status - Worker identity missing")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /worker/reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /worker/reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), req.ToServiceRequest(workerID, reservationID))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /worker/reservations/{id}/status - Invalid status: reservation_id=%d, status=%s",
				reservationID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /worker/reservations/{id}/status - Invalid transition: reservation_id=%d, status=%s",
				reservationID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrNotAssignedWorker):
			h.logger.Warn("PATCH /worker/reservations/{id}/status - Not assigned: reservation_id=%d, worker_id=%d",
				reservationID, workerID)
			handlers.RespondForbidden(w, msgNotAssigned)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /worker/reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /worker/reservations/{id}/status - Failed to change status: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /worker/reservations/{id}/status - Status changed: reservation_id=%d, status=%s, worker_id=%d",
		reservationID, result.Status, workerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
