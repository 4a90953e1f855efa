package api

import (
	"net/http"

	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/logging"
	"space-catalog/shipyard/internal/middleware"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	common.RespondSuccess(w, statusCode, data)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	common.RespondError(w, statusCode, message)
}

// respondWithServiceError maps the two failure kinds to 400 and 404.
// Anything else is logged and reported as 500 without internals.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errors.ErrMalformedInput):
		logging.Debug("Ship request rejected",
			"request_id", middleware.GetRequestID(r.Context()),
			"path", r.URL.Path,
			"error", err.Error(),
			"details", errors.GetAllDetails(err),
		)
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errors.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		logging.Error("Ship request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
