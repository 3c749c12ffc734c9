package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondForbidden(rec, "доступ запрещен")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusForbidden, body.Code)
	assert.Equal(t, "доступ запрещен", body.Message)
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Status string `json:"status"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"done"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "done", dst.Status)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestWorkerIDFromContext(t *testing.T) {
	_, ok := WorkerIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := WorkerIDFromContext(WithWorkerID(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	_, ok = WorkerIDFromContext(WithWorkerID(context.Background(), 0))
	assert.False(t, ok)
}
