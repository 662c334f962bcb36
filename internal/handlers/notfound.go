package handlers

import (
	"fmt"
	"net/http"
)

// NewNotFoundHandler converts unmatched routes into the uniform error
// envelope.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Route %s not found", r.URL.Path))
	}
}

// NewMethodNotAllowedHandler converts unsupported methods into the
// uniform error envelope.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method))
	}
}
