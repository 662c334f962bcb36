package handlers

import "net/http"

// HealthData is the liveness payload.
// swagger:model HealthData
type HealthData struct {
	// example: ok
	Status string `json:"status"`
}

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Tags misc
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Service is alive"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, HealthData{Status: "ok"})
	}
}
