package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes ограничение размера тела запроса
const MaxBodyBytes = 1 << 20

// ErrEmptyBody возвращается, когда тело запроса пустое
var ErrEmptyBody = errors.New("empty request body")

// DecodeJSON декодирует тело запроса в dst, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}
