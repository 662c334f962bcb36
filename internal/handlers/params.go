package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parsePagination reads page/limit query params; zero means "use defaults".
func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// parseID reads a uuid URL parameter.
func parseID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// queryStringPtr returns a pointer to the query param value, nil when absent.
func queryStringPtr(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

// queryBoolPtr returns a pointer to the parsed boolean query param,
// nil when absent or unparsable.
func queryBoolPtr(r *http.Request, name string) *bool {
	if v := r.URL.Query().Get(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}
