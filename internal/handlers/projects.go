package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

// ProjectLister defines the read side of the project service.
type ProjectLister interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]models.ProjectDB, models.Pagination, error)
	Get(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error)
}

// ProjectEditor defines the admin-only write side of the project service.
type ProjectEditor interface {
	Create(ctx context.Context, in services.ProjectInput) (*models.ProjectDB, error)
	Update(ctx context.Context, projectID uuid.UUID, patch services.ProjectPatch) (*models.ProjectDB, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// ProjectRequest represents the JSON body for creating a project
// swagger:model ProjectRequest
type ProjectRequest struct {
	// required: true
	Title string `json:"title"`
	// required: true
	Overview string   `json:"overview"`
	Problem  string   `json:"problem"`
	Features []string `json:"features"`
	ImageURL string   `json:"imageUrl"`
	// required: true
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demoUrl"`
	CodeURL      string   `json:"codeUrl"`
	// required: true
	// example: AI
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

// ProjectPatchRequest represents the JSON body for a partial project update
// swagger:model ProjectPatchRequest
type ProjectPatchRequest struct {
	Title        *string   `json:"title"`
	Overview     *string   `json:"overview"`
	Problem      *string   `json:"problem"`
	Features     *[]string `json:"features"`
	ImageURL     *string   `json:"imageUrl"`
	Technologies *[]string `json:"technologies"`
	DemoURL      *string   `json:"demoUrl"`
	CodeURL      *string   `json:"codeUrl"`
	Category     *string   `json:"category"`
	Featured     *bool     `json:"featured"`
}

// NewListProjectsHandler returns an HTTP handler for listing projects.
// @Summary List projects
// @Description Newest first. Empty pages return an empty list, not an error.
// @Tags projects
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param category query string false "Category filter"
// @Param featured query bool false "Featured filter"
// @Success 200 {object} handlers.SuccessResponse "Projects page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Router /projects [get]
func NewListProjectsHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)
		filter := models.ProjectFilter{
			Category: queryStringPtr(r, "category"),
			Featured: queryBoolPtr(r, "featured"),
			Page:     page,
			Limit:    limit,
		}

		projects, pagination, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeList(w, projects, pagination)
	}
}

// NewProjectsByCategoryHandler returns an HTTP handler for the
// category listing.
// @Summary List projects in one category
// @Tags projects
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} handlers.SuccessResponse "Projects page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Router /projects/category/{category} [get]
func NewProjectsByCategoryHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		page, limit := parsePagination(r)

		projects, pagination, err := svc.List(r.Context(), models.ProjectFilter{
			Category: &category,
			Page:     page,
			Limit:    limit,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeList(w, projects, pagination)
	}
}

// NewGetProjectHandler returns an HTTP handler for a single project.
// @Summary Get one project
// @Tags projects
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} handlers.SuccessResponse "Project"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func NewGetProjectHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}

		project, err := svc.Get(r.Context(), projectID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, project)
	}
}

// NewCreateProjectHandler returns an HTTP handler for creating a project.
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param projectRequest body handlers.ProjectRequest true "Project"
// @Success 201 {object} handlers.SuccessResponse "Created project"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /projects [post]
// @Security CookieAuth
func NewCreateProjectHandler(svc ProjectEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		project, err := svc.Create(r.Context(), services.ProjectInput{
			Title:        req.Title,
			Overview:     req.Overview,
			Problem:      req.Problem,
			Features:     req.Features,
			ImageURL:     req.ImageURL,
			Technologies: req.Technologies,
			DemoURL:      req.DemoURL,
			CodeURL:      req.CodeURL,
			Category:     req.Category,
			Featured:     req.Featured,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusCreated, project)
	}
}

// NewUpdateProjectHandler returns an HTTP handler for partially
// updating a project.
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param projectPatchRequest body handlers.ProjectPatchRequest true "Fields to change"
// @Success 200 {object} handlers.SuccessResponse "Updated project"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
// @Security CookieAuth
func NewUpdateProjectHandler(svc ProjectEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}

		var req ProjectPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		project, err := svc.Update(r.Context(), projectID, services.ProjectPatch{
			Title:        req.Title,
			Overview:     req.Overview,
			Problem:      req.Problem,
			Features:     req.Features,
			ImageURL:     req.ImageURL,
			Technologies: req.Technologies,
			DemoURL:      req.DemoURL,
			CodeURL:      req.CodeURL,
			Category:     req.Category,
			Featured:     req.Featured,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, project)
	}
}

// NewDeleteProjectHandler returns an HTTP handler for deleting a project.
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} handlers.SuccessResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
// @Security CookieAuth
func NewDeleteProjectHandler(svc ProjectEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}

		if err := svc.Delete(r.Context(), projectID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Project deleted")
	}
}
