package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentaid/internal/common"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error renders a coded error. Only the message is exposed; wrapped
// internal detail stays server-side.
func Error(w http.ResponseWriter, err error) {
	body := errorBody{Error: "internal server error"}
	var appErr *common.Error
	if errors.As(err, &appErr) {
		body.Error = appErr.Message
		body.Fields = appErr.Fields
	}
	JSON(w, Status(err), body)
}

// Status maps error codes to HTTP statuses. Unknown errors are 500.
func Status(err error) int {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
