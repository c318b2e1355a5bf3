package services

import (
	"context"
	"errors"
	"strings"

	"issueboard-be/internal/models"
	"issueboard-be/internal/repository"
)

// defaultColumns are seeded in fixed order on every project create.
var defaultColumns = []struct {
	name  string
	color string
}{
	{"To Do", "#6B7280"},
	{"In Progress", "#3B82F6"},
	{"In Review", "#F59E0B"},
	{"Done", "#10B981"},
}

// ProjectService handles project lifecycle. Creating a project seeds the
// four default board columns; deleting one does not cascade to its columns
// or tickets.
type ProjectService struct {
	projects ProjectStore
	columns  ColumnStore
}

func NewProjectService(projects ProjectStore, columns ColumnStore) *ProjectService {
	return &ProjectService{projects: projects, columns: columns}
}

// FindAll lists projects without their boards.
func (s *ProjectService) FindAll(ctx context.Context) ([]models.ProjectResponse, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *projectResponse(&projects[i])
	}
	return responses, nil
}

func (s *ProjectService) FindByID(ctx context.Context, id string) (*models.ProjectResponse, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponseWithColumns(ctx, project)
}

func (s *ProjectService) FindByKey(ctx context.Context, key string) (*models.ProjectResponse, error) {
	project, err := s.projects.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Project", ID: key}
		}
		return nil, err
	}
	return s.toResponseWithColumns(ctx, project)
}

// Create registers the project under its uppercase-normalized key and seeds
// the default columns at positions 0-3.
func (s *ProjectService) Create(ctx context.Context, req models.ProjectCreateRequest) (*models.ProjectResponse, error) {
	key := strings.ToUpper(req.Key)

	exists, err := s.projects.ExistsByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ConflictError{Message: "project key already exists"}
	}

	project := &models.Project{
		Name:        req.Name,
		Key:         key,
		Description: req.Description,
	}
	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, err
	}

	for i, def := range defaultColumns {
		column := &models.Column{
			Name:      def.name,
			Color:     def.color,
			Position:  i,
			ProjectID: project.ID,
		}
		if err := s.columns.Insert(ctx, column); err != nil {
			return nil, err
		}
	}

	return s.toResponseWithColumns(ctx, project)
}

func (s *ProjectService) Update(ctx context.Context, id string, req models.ProjectUpdateRequest) (*models.ProjectResponse, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return s.toResponseWithColumns(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.getProject(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}

func (s *ProjectService) getProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Project", ID: id}
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) toResponseWithColumns(ctx context.Context, project *models.Project) (*models.ProjectResponse, error) {
	columns, err := s.columns.FindByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	resp := projectResponse(project)
	resp.Columns = make([]models.ColumnResponse, len(columns))
	for i, col := range columns {
		resp.Columns[i] = models.ColumnResponse{
			ID:        col.ID,
			Name:      col.Name,
			Position:  col.Position,
			Color:     col.Color,
			ProjectID: col.ProjectID,
		}
	}
	return resp, nil
}

func projectResponse(project *models.Project) *models.ProjectResponse {
	return &models.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Key:         project.Key,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
