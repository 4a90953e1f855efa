package common

import (
	"encoding/json"
	"net/http"
	"time"

	"space-catalog/shipyard/internal/constants"
	"space-catalog/shipyard/internal/logging"
	"space-catalog/shipyard/internal/models/dtos/responses"
)

// RespondSuccess sends the standard envelope with data.
func RespondSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	WriteJSON(w, statusCode, responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

// RespondError sends the standard envelope with an error message and no data.
func RespondError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Error:     message,
	})
}

// WriteJSON marshals body and writes it to the HTTP response.
func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
