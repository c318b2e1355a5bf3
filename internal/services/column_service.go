package services

import (
	"context"
	"errors"

	"issueboard-be/internal/models"
	"issueboard-be/internal/repository"
)

// ColumnService handles board column lifecycle. Columns are appended at the
// end of their project's sequence on create and keep that position for life;
// there is no column reorder operation. Deleting a column neither reassigns
// its tickets nor compacts the sibling positions.
type ColumnService struct {
	columns   ColumnStore
	tickets   TicketStore
	projects  ProjectStore
	ticketSvc *TicketService
}

func NewColumnService(columns ColumnStore, tickets TicketStore, projects ProjectStore, ticketSvc *TicketService) *ColumnService {
	return &ColumnService{
		columns:   columns,
		tickets:   tickets,
		projects:  projects,
		ticketSvc: ticketSvc,
	}
}

// FindByProject returns the board: columns ordered by position, each with
// its tickets ordered by position.
func (s *ColumnService) FindByProject(ctx context.Context, projectID string) ([]models.ColumnResponse, error) {
	columns, err := s.columns.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ColumnResponse, 0, len(columns))
	for i := range columns {
		resp, err := s.toResponseWithTickets(ctx, &columns[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *ColumnService) Create(ctx context.Context, req models.ColumnCreateRequest) (*models.ColumnResponse, error) {
	project, err := s.getProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	position, err := nextColumnPosition(ctx, s.columns, project.ID)
	if err != nil {
		return nil, err
	}

	column := &models.Column{
		Name:      req.Name,
		Position:  position,
		Color:     req.Color,
		ProjectID: project.ID,
	}
	if err := s.columns.Insert(ctx, column); err != nil {
		return nil, err
	}
	return s.toResponseWithTickets(ctx, column)
}

// Update replaces the column name; the color only when supplied.
func (s *ColumnService) Update(ctx context.Context, id string, req models.ColumnUpdateRequest) (*models.ColumnResponse, error) {
	column, err := s.getColumn(ctx, id)
	if err != nil {
		return nil, err
	}

	column.Name = req.Name
	if req.Color != nil {
		column.Color = *req.Color
	}

	if err := s.columns.Update(ctx, column); err != nil {
		return nil, err
	}
	return s.toResponseWithTickets(ctx, column)
}

func (s *ColumnService) Delete(ctx context.Context, id string) error {
	if _, err := s.getColumn(ctx, id); err != nil {
		return err
	}
	return s.columns.Delete(ctx, id)
}

func (s *ColumnService) getColumn(ctx context.Context, id string) (*models.Column, error) {
	column, err := s.columns.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Column", ID: id}
		}
		return nil, err
	}
	return column, nil
}

func (s *ColumnService) getProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Project", ID: id}
		}
		return nil, err
	}
	return project, nil
}

func (s *ColumnService) toResponseWithTickets(ctx context.Context, column *models.Column) (*models.ColumnResponse, error) {
	tickets, err := s.tickets.FindByColumn(ctx, column.ID)
	if err != nil {
		return nil, err
	}
	ticketResponses, err := s.ticketSvc.toResponses(ctx, tickets)
	if err != nil {
		return nil, err
	}

	return &models.ColumnResponse{
		ID:        column.ID,
		Name:      column.Name,
		Position:  column.Position,
		Color:     column.Color,
		ProjectID: column.ProjectID,
		Tickets:   ticketResponses,
	}, nil
}
