package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

// SuccessResponse is the uniform envelope around every successful response.
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Response status
	// example: success
	Status string `json:"status"`

	// Response payload
	Data any `json:"data,omitempty"`

	// Human-readable message for data-less successes
	// example: Deleted
	Message string `json:"message,omitempty"`

	// Page metadata on list responses
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the uniform envelope around every error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Response status
	// example: error
	Status string `json:"status"`

	// Error message
	// example: Resource not found
	Message string `json:"message"`
}

func writeData(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(SuccessResponse{Status: "success", Data: data})
}

func writeList(w http.ResponseWriter, data any, p models.Pagination) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SuccessResponse{Status: "success", Data: data, Pagination: &p})
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(SuccessResponse{Status: "success", Message: message})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Status: "error", Message: message})
}

// writeServiceError maps service sentinels onto HTTP status codes.
// Unclassified errors become a generic 500; the detail is only logged.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidProjectCategory),
		errors.Is(err, services.ErrInvalidBlogCategory),
		errors.Is(err, services.ErrInvalidContactStatus),
		errors.Is(err, services.ErrResetTokenInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrResumeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
