package open_shift

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

type shiftServiceMock struct {
	mock.Mock
}

func (m *shiftServiceMock) Open(ctx context.Context, workerID int64) (*models.ShiftResponse, error) {
	args := m.Called(ctx, workerID)
	resp, _ := args.Get(0).(*models.ShiftResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(workerID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/worker/shift/open", nil)
	if workerID > 0 {
		req = req.WithContext(handlers.WithWorkerID(req.Context(), workerID))
	}
	return req
}

func TestHandle_Created(t *testing.T) {
	svc := &shiftServiceMock{}
	svc.On("Open", mock.Anything, int64(7)).Return(&models.ShiftResponse{
		ID: 1, WorkerID: 7, Date: "2024-03-10", State: "open", TotalRevenue: decimal.Zero,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(7))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-03-10", body["date"])
	assert.Equal(t, "open", body["state"])
	svc.AssertExpectations(t)
}

func TestHandle_AlreadyOpen(t *testing.T) {
	svc := &shiftServiceMock{}
	svc.On("Open", mock.Anything, int64(7)).Return(nil, shifts.ErrAlreadyOpen)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgAlreadyOpen)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &shiftServiceMock{}
	svc.On("Open", mock.Anything, int64(7)).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(7))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestHandle_Unauthorized(t *testing.T) {
	svc := &shiftServiceMock{}

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(0))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}
