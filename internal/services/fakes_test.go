package services

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"issueboard-be/internal/models"
	"issueboard-be/internal/repository"
)

// In-memory store fakes. They mirror the Mongo repositories' observable
// behavior: repository.ErrNotFound on missing ids, position-ascending list
// order, timestamps set on insert.

var fakeEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeProjectStore struct {
	m     map[string]*models.Project
	order map[string]int
	seq   int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{m: map[string]*models.Project{}, order: map[string]int{}}
}

func (f *fakeProjectStore) Insert(_ context.Context, project *models.Project) error {
	f.seq++
	if project.ID == "" {
		project.ID = fmt.Sprintf("p%d", f.seq)
	}
	project.CreatedAt = fakeEpoch.Add(time.Duration(f.seq) * time.Second)
	project.UpdatedAt = project.CreatedAt
	cp := *project
	f.m[project.ID] = &cp
	f.order[project.ID] = f.seq
	return nil
}

func (f *fakeProjectStore) FindByID(_ context.Context, id string) (*models.Project, error) {
	p, ok := f.m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectStore) FindByKey(_ context.Context, key string) (*models.Project, error) {
	for _, p := range f.m {
		if p.Key == key {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjectStore) FindAll(_ context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0, len(f.m))
	for _, p := range f.m {
		projects = append(projects, *p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return f.order[projects[i].ID] < f.order[projects[j].ID]
	})
	return projects, nil
}

func (f *fakeProjectStore) Update(_ context.Context, project *models.Project) error {
	stored, ok := f.m[project.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = project.Name
	stored.Description = project.Description
	stored.UpdatedAt = fakeEpoch.Add(time.Duration(f.seq) * time.Second)
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id string) error {
	if _, ok := f.m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.m, id)
	return nil
}

func (f *fakeProjectStore) ExistsByKey(_ context.Context, key string) (bool, error) {
	for _, p := range f.m {
		if p.Key == key {
			return true, nil
		}
	}
	return false, nil
}

type fakeColumnStore struct {
	m     map[string]*models.Column
	order map[string]int
	seq   int
}

func newFakeColumnStore() *fakeColumnStore {
	return &fakeColumnStore{m: map[string]*models.Column{}, order: map[string]int{}}
}

func (f *fakeColumnStore) Insert(_ context.Context, column *models.Column) error {
	f.seq++
	if column.ID == "" {
		column.ID = fmt.Sprintf("c%d", f.seq)
	}
	cp := *column
	f.m[column.ID] = &cp
	f.order[column.ID] = f.seq
	return nil
}

func (f *fakeColumnStore) FindByID(_ context.Context, id string) (*models.Column, error) {
	c, ok := f.m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeColumnStore) FindByProject(_ context.Context, projectID string) ([]models.Column, error) {
	var columns []models.Column
	for _, c := range f.m {
		if c.ProjectID == projectID {
			columns = append(columns, *c)
		}
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].Position != columns[j].Position {
			return columns[i].Position < columns[j].Position
		}
		return f.order[columns[i].ID] < f.order[columns[j].ID]
	})
	return columns, nil
}

func (f *fakeColumnStore) CountByProject(_ context.Context, projectID string) (int, error) {
	count := 0
	for _, c := range f.m {
		if c.ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

func (f *fakeColumnStore) Update(_ context.Context, column *models.Column) error {
	stored, ok := f.m[column.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = column.Name
	stored.Color = column.Color
	return nil
}

func (f *fakeColumnStore) Delete(_ context.Context, id string) error {
	if _, ok := f.m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.m, id)
	return nil
}

type fakeTicketStore struct {
	m     map[string]*models.Ticket
	order map[string]int
	seq   int
}

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{m: map[string]*models.Ticket{}, order: map[string]int{}}
}

func (f *fakeTicketStore) Insert(_ context.Context, ticket *models.Ticket) error {
	f.seq++
	if ticket.ID == "" {
		ticket.ID = fmt.Sprintf("t%d", f.seq)
	}
	ticket.CreatedAt = fakeEpoch.Add(time.Duration(f.seq) * time.Second)
	ticket.UpdatedAt = ticket.CreatedAt
	cp := *ticket
	f.m[ticket.ID] = &cp
	f.order[ticket.ID] = f.seq
	return nil
}

func (f *fakeTicketStore) FindByID(_ context.Context, id string) (*models.Ticket, error) {
	t, ok := f.m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTicketStore) FindByColumn(_ context.Context, columnID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	for _, t := range f.m {
		if t.ColumnID == columnID {
			tickets = append(tickets, *t)
		}
	}
	f.sortByPosition(tickets)
	return tickets, nil
}

func (f *fakeTicketStore) FindByProject(_ context.Context, projectID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	for _, t := range f.m {
		if t.ProjectID == projectID {
			tickets = append(tickets, *t)
		}
	}
	f.sortByPosition(tickets)
	return tickets, nil
}

func (f *fakeTicketStore) sortByPosition(tickets []models.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].Position != tickets[j].Position {
			return tickets[i].Position < tickets[j].Position
		}
		return f.order[tickets[i].ID] < f.order[tickets[j].ID]
	})
}

func (f *fakeTicketStore) MaxPositionInColumn(_ context.Context, columnID string) (int, error) {
	max := -1
	for _, t := range f.m {
		if t.ColumnID == columnID && t.Position > max {
			max = t.Position
		}
	}
	return max, nil
}

func (f *fakeTicketStore) Update(_ context.Context, ticket *models.Ticket) error {
	stored, ok := f.m[ticket.ID]
	if !ok {
		return repository.ErrNotFound
	}
	created, seq := stored.CreatedAt, f.order[ticket.ID]
	cp := *ticket
	cp.CreatedAt = created
	cp.UpdatedAt = fakeEpoch.Add(time.Duration(f.seq) * time.Second)
	f.m[ticket.ID] = &cp
	f.order[ticket.ID] = seq
	return nil
}

func (f *fakeTicketStore) UpdatePosition(_ context.Context, id string, position int) error {
	stored, ok := f.m[id]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Position = position
	return nil
}

func (f *fakeTicketStore) Delete(_ context.Context, id string) error {
	if _, ok := f.m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.m, id)
	return nil
}

type fakeCommentStore struct {
	m   map[string]*models.Comment
	seq int
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{m: map[string]*models.Comment{}}
}

func (f *fakeCommentStore) Insert(_ context.Context, comment *models.Comment) error {
	f.seq++
	if comment.ID == "" {
		comment.ID = fmt.Sprintf("cm%d", f.seq)
	}
	comment.CreatedAt = fakeEpoch.Add(time.Duration(f.seq) * time.Second)
	comment.UpdatedAt = comment.CreatedAt
	cp := *comment
	f.m[comment.ID] = &cp
	return nil
}

func (f *fakeCommentStore) FindByID(_ context.Context, id string) (*models.Comment, error) {
	c, ok := f.m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentStore) FindByTicket(_ context.Context, ticketID string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, c := range f.m {
		if c.TicketID == ticketID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (f *fakeCommentStore) Update(_ context.Context, comment *models.Comment) error {
	stored, ok := f.m[comment.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Content = comment.Content
	stored.UpdatedAt = fakeEpoch.Add(time.Duration(f.seq) * time.Second)
	return nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id string) error {
	if _, ok := f.m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.m, id)
	return nil
}

func (f *fakeCommentStore) DeleteByTicket(_ context.Context, ticketID string) error {
	for id, c := range f.m {
		if c.TicketID == ticketID {
			delete(f.m, id)
		}
	}
	return nil
}

type fakeUserStore struct {
	m     map[string]*models.User
	order map[string]int
	seq   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{m: map[string]*models.User{}, order: map[string]int{}}
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	f.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("u%d", f.seq)
	}
	user.CreatedAt = fakeEpoch.Add(time.Duration(f.seq) * time.Second)
	cp := *user
	f.m[user.ID] = &cp
	f.order[user.ID] = f.seq
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.m))
	for _, u := range f.m {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		return f.order[users[i].ID] < f.order[users[j].ID]
	})
	return users, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	stored, ok := f.m[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.DisplayName = user.DisplayName
	stored.AvatarURL = user.AvatarURL
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := f.m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.m, id)
	return nil
}

func (f *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.m {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.m {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fixture wires every service against shared fakes.
type fixture struct {
	projects *fakeProjectStore
	columns  *fakeColumnStore
	tickets  *fakeTicketStore
	comments *fakeCommentStore
	users    *fakeUserStore

	projectSvc *ProjectService
	columnSvc  *ColumnService
	ticketSvc  *TicketService
	commentSvc *CommentService
	userSvc    *UserService
}

func newFixture() *fixture {
	fx := &fixture{
		projects: newFakeProjectStore(),
		columns:  newFakeColumnStore(),
		tickets:  newFakeTicketStore(),
		comments: newFakeCommentStore(),
		users:    newFakeUserStore(),
	}
	fx.projectSvc = NewProjectService(fx.projects, fx.columns)
	fx.ticketSvc = NewTicketService(fx.tickets, fx.columns, fx.projects, fx.comments, fx.users)
	fx.columnSvc = NewColumnService(fx.columns, fx.tickets, fx.projects, fx.ticketSvc)
	fx.commentSvc = NewCommentService(fx.comments, fx.tickets, fx.users)
	fx.userSvc = NewUserService(fx.users)
	return fx
}

func (fx *fixture) seedProject(t *testing.T, name, key string) *models.Project {
	t.Helper()
	project := &models.Project{Name: name, Key: key}
	if err := fx.projects.Insert(context.Background(), project); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}

func (fx *fixture) seedColumn(t *testing.T, projectID, name string, position int) *models.Column {
	t.Helper()
	column := &models.Column{Name: name, Position: position, ProjectID: projectID}
	if err := fx.columns.Insert(context.Background(), column); err != nil {
		t.Fatalf("seed column: %v", err)
	}
	return column
}

func (fx *fixture) seedTicket(t *testing.T, projectID, columnID, title string, position int) *models.Ticket {
	t.Helper()
	ticket := &models.Ticket{
		Title:     title,
		Priority:  models.PriorityMedium,
		Type:      models.TypeTask,
		Position:  position,
		ProjectID: projectID,
		ColumnID:  columnID,
	}
	if err := fx.tickets.Insert(context.Background(), ticket); err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	return ticket
}

func (fx *fixture) seedUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:    username,
		Email:       username + "@example.com",
		DisplayName: username,
	}
	if err := fx.users.Insert(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func strptr(s string) *string { return &s }

func intptr(i int) *int { return &i }
