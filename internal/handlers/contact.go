package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

// ContactCreator accepts public contact form submissions.
type ContactCreator interface {
	Create(ctx context.Context, in services.ContactInput) (*models.ContactMessageDB, error)
}

// ContactManager defines the admin-only side of the contact service.
type ContactManager interface {
	List(ctx context.Context, filter models.ContactFilter) ([]models.ContactMessageDB, models.Pagination, error)
	Get(ctx context.Context, messageID uuid.UUID) (*models.ContactMessageDB, error)
	Update(ctx context.Context, messageID uuid.UUID, status, notes *string) (*models.ContactMessageDB, error)
	Delete(ctx context.Context, messageID uuid.UUID) error
}

// ContactRequest represents the JSON body for a contact submission
// swagger:model ContactRequest
type ContactRequest struct {
	// required: true
	// example: Jane Doe
	Name string `json:"name"`
	// required: true
	// example: jane@example.com
	Email   string `json:"email"`
	Subject string `json:"subject"`
	// required: true
	// example: Hello!
	Message string `json:"message"`
}

// ContactPatchRequest represents the JSON body for an admin update
// swagger:model ContactPatchRequest
type ContactPatchRequest struct {
	// example: read
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// NewCreateContactHandler returns an HTTP handler for the public
// contact form. A failed admin notification never fails the request.
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param contactRequest body handlers.ContactRequest true "Contact message"
// @Success 201 {object} handlers.SuccessResponse "Created message"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Router /contact [post]
func NewCreateContactHandler(svc ContactCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		clientIP := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			clientIP = host
		}

		message, err := svc.Create(r.Context(), services.ContactInput{
			Name:      req.Name,
			Email:     req.Email,
			Subject:   req.Subject,
			Message:   req.Message,
			IPAddress: clientIP,
			UserAgent: r.UserAgent(),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusCreated, message)
	}
}

// NewListContactHandler returns an HTTP handler for the admin inbox.
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} handlers.SuccessResponse "Messages page"
// @Router /contact [get]
// @Security CookieAuth
func NewListContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)
		filter := models.ContactFilter{
			Status: queryStringPtr(r, "status"),
			Page:   page,
			Limit:  limit,
		}

		messages, pagination, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeList(w, messages, pagination)
	}
}

// NewGetContactHandler returns an HTTP handler for a single message.
// @Summary Get one contact message
// @Tags contact
// @Produce json
// @Param id path string true "Message id"
// @Success 200 {object} handlers.SuccessResponse "Message"
// @Failure 404 {object} handlers.ErrorResponse "Message not found"
// @Router /contact/{id} [get]
// @Security CookieAuth
func NewGetContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid message id")
			return
		}

		message, err := svc.Get(r.Context(), messageID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, message)
	}
}

// NewUpdateContactHandler returns an HTTP handler for updating status
// and notes on a message.
// @Summary Update a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Message id"
// @Param contactPatchRequest body handlers.ContactPatchRequest true "Fields to change"
// @Success 200 {object} handlers.SuccessResponse "Updated message"
// @Failure 404 {object} handlers.ErrorResponse "Message not found"
// @Router /contact/{id} [put]
// @Security CookieAuth
func NewUpdateContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid message id")
			return
		}

		var req ContactPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		message, err := svc.Update(r.Context(), messageID, req.Status, req.Notes)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, message)
	}
}

// NewDeleteContactHandler returns an HTTP handler for deleting a message.
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Param id path string true "Message id"
// @Success 200 {object} handlers.SuccessResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Message not found"
// @Router /contact/{id} [delete]
// @Security CookieAuth
func NewDeleteContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid message id")
			return
		}

		if err := svc.Delete(r.Context(), messageID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Contact message deleted")
	}
}
