package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// ResumeGetter reads the singleton resume.
type ResumeGetter interface {
	Get(ctx context.Context) (*models.ResumeDB, error)
}

// ResumeUpdater upserts the singleton resume.
type ResumeUpdater interface {
	Update(ctx context.Context, payload models.ResumePayload) (*models.ResumeDB, error)
}

// DownloadTracker records download analytics events.
type DownloadTracker interface {
	TrackDownload(ctx context.Context, e models.DownloadEventDB) error
}

// DownloadTrackRequest represents the JSON body for a download event
// swagger:model DownloadTrackRequest
type DownloadTrackRequest struct {
	// example: resume
	Document string `json:"document"`
	// example: hero-button
	Source string `json:"source"`
}

// NewGetResumeHandler returns an HTTP handler for reading the resume.
// @Summary Get the resume
// @Tags resume
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Resume"
// @Failure 404 {object} handlers.ErrorResponse "No resume stored yet"
// @Router /resume [get]
func NewGetResumeHandler(svc ResumeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := svc.Get(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, resume)
	}
}

// NewUpdateResumeHandler returns an HTTP handler for upserting the resume.
// @Summary Update the resume
// @Description Creates the resume if none exists, otherwise replaces it.
// @Tags resume
// @Accept json
// @Produce json
// @Param payload body models.ResumePayload true "Resume payload"
// @Success 200 {object} handlers.SuccessResponse "Stored resume"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Router /resume [put]
// @Security CookieAuth
func NewUpdateResumeHandler(svc ResumeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.ResumePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		resume, err := svc.Update(r.Context(), payload)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, resume)
	}
}

// NewDownloadTrackHandler returns an HTTP handler for download analytics.
// @Summary Track a resume download
// @Tags resume
// @Accept json
// @Produce json
// @Param downloadTrackRequest body handlers.DownloadTrackRequest true "Download event"
// @Success 201 {object} handlers.SuccessResponse "Event recorded"
// @Router /resume/download-track [post]
func NewDownloadTrackHandler(svc DownloadTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DownloadTrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		clientIP := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			clientIP = host
		}

		err := svc.TrackDownload(r.Context(), models.DownloadEventDB{
			Document:  req.Document,
			Source:    req.Source,
			Referrer:  r.Referer(),
			IPAddress: clientIP,
			UserAgent: r.UserAgent(),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusCreated, "Download recorded")
	}
}
