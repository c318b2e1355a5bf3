package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"issueboard-be/internal/models"
	"issueboard-be/internal/repository"
	"issueboard-be/internal/utils"

	"github.com/sahilm/fuzzy"
)

// TicketService orchestrates ticket lifecycle operations. Create appends to
// the target column's ordered sequence, Move relocates a ticket with the
// one-directional sibling shift, Update replaces fields with per-field
// presence semantics and never shifts positions.
type TicketService struct {
	tickets  TicketStore
	columns  ColumnStore
	projects ProjectStore
	comments CommentStore
	users    UserStore
}

func NewTicketService(tickets TicketStore, columns ColumnStore, projects ProjectStore, comments CommentStore, users UserStore) *TicketService {
	return &TicketService{
		tickets:  tickets,
		columns:  columns,
		projects: projects,
		comments: comments,
		users:    users,
	}
}

// FindByProject returns the project's tickets ordered by column position,
// then ticket position.
func (s *TicketService) FindByProject(ctx context.Context, projectID string) ([]models.TicketResponse, error) {
	tickets, err := s.tickets.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	columns, err := s.columns.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	columnPos := make(map[string]int, len(columns))
	for _, col := range columns {
		columnPos[col.ID] = col.Position
	}

	// Tickets referencing a deleted column sort after the board.
	rank := func(t models.Ticket) int {
		if pos, ok := columnPos[t.ColumnID]; ok {
			return pos
		}
		return len(columns)
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		ri, rj := rank(tickets[i]), rank(tickets[j])
		if ri != rj {
			return ri < rj
		}
		return tickets[i].Position < tickets[j].Position
	})

	return s.toResponses(ctx, tickets)
}

func (s *TicketService) FindByID(ctx context.Context, id string) (*models.TicketResponse, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, ticket)
}

func (s *TicketService) Create(ctx context.Context, req models.TicketCreateRequest) (*models.TicketResponse, error) {
	project, err := s.getProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	column, err := s.getColumn(ctx, req.ColumnID)
	if err != nil {
		return nil, err
	}

	position, err := nextTicketPosition(ctx, s.tickets, column.ID)
	if err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:       req.Title,
		Description: utils.SanitizeHTML(req.Description),
		Priority:    models.PriorityMedium,
		Type:        models.TypeTask,
		Position:    position,
		StoryPoints: req.StoryPoints,
		DueDate:     parseDueDate(req.DueDate),
		ProjectID:   project.ID,
		ColumnID:    column.ID,
	}
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}
	if req.Type != nil {
		ticket.Type = *req.Type
	}

	if req.AssigneeID != nil {
		assignee, err := s.resolveUser(ctx, *req.AssigneeID)
		if err != nil {
			return nil, err
		}
		ticket.AssigneeID = assignee.ID
	}
	if req.ReporterID != nil {
		reporter, err := s.resolveUser(ctx, *req.ReporterID)
		if err != nil {
			return nil, err
		}
		ticket.ReporterID = reporter.ID
	}

	if err := s.tickets.Insert(ctx, ticket); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, ticket)
}

// Update replaces ticket fields. Title, description, story points and due
// date are replaced unconditionally; priority and type only when supplied.
// A supplied columnId that differs from the current one swaps the reference
// without shifting any positions (use Move for that). An absent assigneeId
// clears the assignee; an absent reporterId leaves the reporter unchanged.
func (s *TicketService) Update(ctx context.Context, id string, req models.TicketUpdateRequest) (*models.TicketResponse, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.Title = req.Title
	ticket.Description = utils.SanitizeHTML(req.Description)
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}
	if req.Type != nil {
		ticket.Type = *req.Type
	}
	ticket.StoryPoints = req.StoryPoints
	ticket.DueDate = parseDueDate(req.DueDate)

	if req.ColumnID != nil && *req.ColumnID != ticket.ColumnID {
		column, err := s.getColumn(ctx, *req.ColumnID)
		if err != nil {
			return nil, err
		}
		ticket.ColumnID = column.ID
	}

	if req.AssigneeID != nil {
		assignee, err := s.resolveUser(ctx, *req.AssigneeID)
		if err != nil {
			return nil, err
		}
		ticket.AssigneeID = assignee.ID
	} else {
		ticket.AssigneeID = ""
	}
	if req.ReporterID != nil {
		reporter, err := s.resolveUser(ctx, *req.ReporterID)
		if err != nil {
			return nil, err
		}
		ticket.ReporterID = reporter.ID
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, ticket)
}

// Move relocates the ticket to the target column at the requested position,
// shifting siblings at or after it up by one first. The position is taken as
// supplied; a value past the end of the column leaves a gap.
func (s *TicketService) Move(ctx context.Context, id string, req models.TicketMoveRequest) (*models.TicketResponse, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	column, err := s.getColumn(ctx, req.ColumnID)
	if err != nil {
		return nil, err
	}

	if err := shiftForInsert(ctx, s.tickets, column.ID, ticket.ID, *req.Position); err != nil {
		return nil, err
	}

	ticket.ColumnID = column.ID
	ticket.Position = *req.Position
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, ticket)
}

// Delete removes the ticket and its comments. Sibling positions are not
// compacted.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	if _, err := s.getTicket(ctx, id); err != nil {
		return err
	}
	if err := s.comments.DeleteByTicket(ctx, id); err != nil {
		return err
	}
	return s.tickets.Delete(ctx, id)
}

// Search fuzzy-matches the query against the project's ticket titles,
// accent-folded and case-insensitive, best matches first.
func (s *TicketService) Search(ctx context.Context, projectID, query string, limit int) ([]models.TicketResponse, error) {
	tickets, err := s.tickets.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(tickets))
	for i := range tickets {
		titles[i] = utils.NormalizeText(tickets[i].Title)
	}

	matches := fuzzy.Find(utils.NormalizeText(query), titles)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	ranked := make([]models.Ticket, len(matches))
	for i, m := range matches {
		ranked[i] = tickets[m.Index]
	}
	return s.toResponses(ctx, ranked)
}

func (s *TicketService) getTicket(ctx context.Context, id string) (*models.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Ticket", ID: id}
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) getColumn(ctx context.Context, id string) (*models.Column, error) {
	column, err := s.columns.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Column", ID: id}
		}
		return nil, err
	}
	return column, nil
}

func (s *TicketService) getProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Project", ID: id}
		}
		return nil, err
	}
	return project, nil
}

func (s *TicketService) resolveUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "User", ID: id}
		}
		return nil, err
	}
	return user, nil
}

func parseDueDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// cached memoizes reference lookups during projection. Dangling references
// (deleted users, columns, projects) resolve to nil rather than failing the
// read.
func cached[T any](ctx context.Context, cache map[string]*T, id string, fetch func(context.Context, string) (*T, error)) (*T, error) {
	if id == "" {
		return nil, nil
	}
	if v, ok := cache[id]; ok {
		return v, nil
	}
	v, err := fetch(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			cache[id] = nil
			return nil, nil
		}
		return nil, err
	}
	cache[id] = v
	return v, nil
}

func (s *TicketService) toResponse(ctx context.Context, ticket *models.Ticket) (*models.TicketResponse, error) {
	responses, err := s.toResponses(ctx, []models.Ticket{*ticket})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *TicketService) toResponses(ctx context.Context, tickets []models.Ticket) ([]models.TicketResponse, error) {
	projects := map[string]*models.Project{}
	columns := map[string]*models.Column{}
	users := map[string]*models.User{}

	responses := make([]models.TicketResponse, 0, len(tickets))
	for i := range tickets {
		t := &tickets[i]

		project, err := cached(ctx, projects, t.ProjectID, s.projects.FindByID)
		if err != nil {
			return nil, err
		}
		column, err := cached(ctx, columns, t.ColumnID, s.columns.FindByID)
		if err != nil {
			return nil, err
		}
		assignee, err := cached(ctx, users, t.AssigneeID, s.users.FindByID)
		if err != nil {
			return nil, err
		}
		reporter, err := cached(ctx, users, t.ReporterID, s.users.FindByID)
		if err != nil {
			return nil, err
		}

		resp := models.TicketResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			Type:        t.Type,
			Position:    t.Position,
			StoryPoints: t.StoryPoints,
			DueDate:     t.DueDate,
			ProjectID:   t.ProjectID,
			ColumnID:    t.ColumnID,
			Assignee:    userResponse(assignee),
			Reporter:    userResponse(reporter),
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}
		if project != nil {
			resp.ProjectKey = project.Key
		}
		if column != nil {
			resp.ColumnName = column.Name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
