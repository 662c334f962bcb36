package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// Error variables
var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrInvalidProjectCategory = errors.New("invalid project category")
)

// ProjectReader defines read-only operations for projects.
type ProjectReader interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]models.ProjectDB, int64, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Save(ctx context.Context, p models.ProjectDB) error
	Update(ctx context.Context, p models.ProjectDB) (int64, error)
	Delete(ctx context.Context, projectID uuid.UUID) (int64, error)
}

// ProjectInput carries the fields of a project create request.
type ProjectInput struct {
	Title        string
	Overview     string
	Problem      string
	Features     []string
	ImageURL     string
	Technologies []string
	DemoURL      string
	CodeURL      string
	Category     string
	Featured     bool
}

// ProjectPatch carries a partial update; nil fields keep their value.
type ProjectPatch struct {
	Title        *string
	Overview     *string
	Problem      *string
	Features     *[]string
	ImageURL     *string
	Technologies *[]string
	DemoURL      *string
	CodeURL      *string
	Category     *string
	Featured     *bool
}

// ProjectService handles project CRUD and category listing.
type ProjectService struct {
	reader ProjectReader
	writer ProjectWriter
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(reader ProjectReader, writer ProjectWriter) *ProjectService {
	return &ProjectService{reader: reader, writer: writer}
}

// List returns one page of projects. An empty page is a successful
// empty list, never an error.
func (svc *ProjectService) List(ctx context.Context, filter models.ProjectFilter) ([]models.ProjectDB, models.Pagination, error) {
	if filter.Category != nil && !models.IsValidProjectCategory(*filter.Category) {
		return nil, models.Pagination{}, ErrInvalidProjectCategory
	}

	projects, total, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list projects", "err", err)
		return nil, models.Pagination{}, err
	}

	return projects, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one project by id.
func (svc *ProjectService) Get(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error) {
	project, err := svc.reader.GetByID(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "err", err)
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// Create validates and persists a new project.
func (svc *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.ProjectDB, error) {
	if err := validateProjectInput(in); err != nil {
		return nil, err
	}

	project := models.ProjectDB{
		ProjectID:    uuid.New(),
		Title:        in.Title,
		Overview:     in.Overview,
		Problem:      in.Problem,
		Features:     models.StringList(in.Features),
		ImageURL:     in.ImageURL,
		Technologies: models.StringList(in.Technologies),
		DemoURL:      in.DemoURL,
		CodeURL:      in.CodeURL,
		Category:     in.Category,
		Featured:     in.Featured,
	}

	if err := svc.writer.Save(ctx, project); err != nil {
		logger.Log.Errorw("failed to save project", "err", err)
		return nil, err
	}

	return &project, nil
}

// Update applies a partial update. The read-modify-write is not
// transactional; concurrent admin updates may lose writes.
func (svc *ProjectService) Update(ctx context.Context, projectID uuid.UUID, patch ProjectPatch) (*models.ProjectDB, error) {
	project, err := svc.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	applyProjectPatch(project, patch)

	if err := validateProjectInput(ProjectInput{
		Title:        project.Title,
		Overview:     project.Overview,
		Technologies: project.Technologies,
		Category:     project.Category,
	}); err != nil {
		return nil, err
	}

	rows, err := svc.writer.Update(ctx, *project)
	if err != nil {
		logger.Log.Errorw("failed to update project", "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrProjectNotFound
	}

	return project, nil
}

// Delete removes one project by id.
func (svc *ProjectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to delete project", "err", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func validateProjectInput(in ProjectInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Overview == "" {
		return fmt.Errorf("%w: overview is required", ErrValidation)
	}
	if len(in.Technologies) == 0 {
		return fmt.Errorf("%w: at least one technology is required", ErrValidation)
	}
	if !models.IsValidProjectCategory(in.Category) {
		return ErrInvalidProjectCategory
	}
	return nil
}

func applyProjectPatch(p *models.ProjectDB, patch ProjectPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Overview != nil {
		p.Overview = *patch.Overview
	}
	if patch.Problem != nil {
		p.Problem = *patch.Problem
	}
	if patch.Features != nil {
		p.Features = models.StringList(*patch.Features)
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Technologies != nil {
		p.Technologies = models.StringList(*patch.Technologies)
	}
	if patch.DemoURL != nil {
		p.DemoURL = *patch.DemoURL
	}
	if patch.CodeURL != nil {
		p.CodeURL = *patch.CodeURL
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}
