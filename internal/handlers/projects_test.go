package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

func withURLParam(req *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListProjectsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProjectLister(ctrl)

	t.Run("second page carries pagination metadata", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any(), models.ProjectFilter{Page: 2, Limit: 10}).
			Return(make([]models.ProjectDB, 5), models.Pagination{Page: 2, Limit: 10, Total: 15, TotalPages: 2}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects?page=2&limit=10", nil)
		rr := httptest.NewRecorder()

		NewListProjectsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Status     string             `json:"status"`
			Data       []models.ProjectDB `json:"data"`
			Pagination *models.Pagination `json:"pagination"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "success", resp.Status)
		assert.Len(t, resp.Data, 5)
		assert.Equal(t, int64(15), resp.Pagination.Total)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
	})

	t.Run("category and featured filters pass through", func(t *testing.T) {
		category := "AI"
		featured := true
		mockSvc.EXPECT().
			List(gomock.Any(), models.ProjectFilter{Category: &category, Featured: &featured}).
			Return([]models.ProjectDB{}, models.Pagination{Page: 1, Limit: 10}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/projects?category=AI&featured=true", nil)
		rr := httptest.NewRecorder()

		NewListProjectsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid category is a 400", func(t *testing.T) {
		category := "Gardening"
		mockSvc.EXPECT().
			List(gomock.Any(), models.ProjectFilter{Category: &category}).
			Return(nil, models.Pagination{}, services.ErrInvalidProjectCategory)

		req := httptest.NewRequest(http.MethodGet, "/api/projects?category=Gardening", nil)
		rr := httptest.NewRecorder()

		NewListProjectsHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProjectsByCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProjectLister(ctrl)

	category := "Cloud"
	mockSvc.EXPECT().
		List(gomock.Any(), models.ProjectFilter{Category: &category}).
		Return([]models.ProjectDB{}, models.Pagination{Page: 1, Limit: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/category/Cloud", nil)
	rr := httptest.NewRecorder()

	NewProjectsByCategoryHandler(mockSvc).ServeHTTP(rr, withURLParam(req, "category", "Cloud"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []models.ProjectDB `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestGetProjectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProjectLister(ctrl)
	projectID := uuid.New()

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "found",
			id:   projectID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), projectID).
					Return(&models.ProjectDB{ProjectID: projectID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   projectID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), projectID).
					Return(nil, services.ErrProjectNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/projects/"+tt.id, nil)
			rr := httptest.NewRecorder()

			NewGetProjectHandler(mockSvc).ServeHTTP(rr, withURLParam(req, "id", tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateProjectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProjectEditor(ctrl)

	t.Run("created", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in services.ProjectInput) (*models.ProjectDB, error) {
				assert.Equal(t, "Intrusion Detector", in.Title)
				return &models.ProjectDB{ProjectID: uuid.New(), Title: in.Title}, nil
			})

		body, _ := json.Marshal(ProjectRequest{
			Title:        "Intrusion Detector",
			Overview:     "Flags anomalous traffic",
			Technologies: []string{"Go"},
			Category:     "Cybersecurity",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		NewCreateProjectHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidProjectCategory)

		body, _ := json.Marshal(ProjectRequest{Title: "X", Overview: "Y", Technologies: []string{"Go"}, Category: "Gardening"})
		req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		NewCreateProjectHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateProjectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProjectEditor(ctrl)
	projectID := uuid.New()

	title := "Renamed"
	mockSvc.EXPECT().
		Update(gomock.Any(), projectID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, patch services.ProjectPatch) (*models.ProjectDB, error) {
			assert.Equal(t, &title, patch.Title)
			assert.Nil(t, patch.Overview)
			return &models.ProjectDB{ProjectID: projectID, Title: title}, nil
		})

	body, _ := json.Marshal(ProjectPatchRequest{Title: &title})
	req := httptest.NewRequest(http.MethodPut, "/api/projects/"+projectID.String(), bytes.NewReader(body))
	rr := httptest.NewRecorder()

	NewUpdateProjectHandler(mockSvc).ServeHTTP(rr, withURLParam(req, "id", projectID.String()))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteProjectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProjectEditor(ctrl)
	projectID := uuid.New()

	mockSvc.EXPECT().Delete(gomock.Any(), projectID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/"+projectID.String(), nil)
	rr := httptest.NewRecorder()

	NewDeleteProjectHandler(mockSvc).ServeHTTP(rr, withURLParam(req, "id", projectID.String()))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp SuccessResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Project deleted", resp.Message)
}
