package update_reservation_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
)

type reservationServiceMock struct {
	mock.Mock
}

func (m *reservationServiceMock) ChangeStatus(ctx context.Context, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ReservationResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc ReservationService, path, body string, workerID int64) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/worker/reservations/{reservationId}/status",
		NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	if workerID > 0 {
		req = req.WithContext(handlers.WithWorkerID(req.Context(), workerID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &reservationServiceMock{}
	svc.On("ChangeStatus", mock.Anything, &models.ChangeStatusRequest{
		WorkerID: 7, ReservationID: 12, Status: "accepted",
	}).Return(&models.ReservationResponse{ID: 12, Status: "accepted"}, nil)

	rec := serve(svc, "/api/v1/worker/reservations/12/status", `{"status":"accepted"}`, 7)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"accepted"`)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid status", reservations.ErrInvalidInput, http.StatusBadRequest, msgInvalidStatus},
		{"invalid transition", reservations.ErrInvalidTransition, http.StatusBadRequest, msgInvalidTransition},
		{"not assigned", reservations.ErrNotAssignedWorker, http.StatusForbidden, msgNotAssigned},
		{"not found", reservations.ErrReservationNotFound, http.StatusNotFound, msgNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &reservationServiceMock{}
			svc.On("ChangeStatus", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, "/api/v1/worker/reservations/12/status", `{"status":"done"}`, 7)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	svc := &reservationServiceMock{}

	rec := serve(svc, "/api/v1/worker/reservations/abc/status", `{"status":"done"}`, 7)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(svc, "/api/v1/worker/reservations/12/status", `{"state":"done"}`, 7)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(svc, "/api/v1/worker/reservations/12/status", ``, 7)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(svc, "/api/v1/worker/reservations/12/status", `{"status":"done"}`, 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	svc.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything)
}
