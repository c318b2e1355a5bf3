package services

import (
	"context"

	"issueboard-be/internal/models"
)

// The store interfaces are the entity-store contract the services operate
// against. The Mongo repositories in internal/repository implement them;
// tests substitute in-memory fakes. Lookups that resolve nothing return
// repository.ErrNotFound.

type ProjectStore interface {
	Insert(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindByKey(ctx context.Context, key string) (*models.Project, error)
	FindAll(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
	ExistsByKey(ctx context.Context, key string) (bool, error)
}

type ColumnStore interface {
	Insert(ctx context.Context, column *models.Column) error
	FindByID(ctx context.Context, id string) (*models.Column, error)
	FindByProject(ctx context.Context, projectID string) ([]models.Column, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
	Update(ctx context.Context, column *models.Column) error
	Delete(ctx context.Context, id string) error
}

type TicketStore interface {
	Insert(ctx context.Context, ticket *models.Ticket) error
	FindByID(ctx context.Context, id string) (*models.Ticket, error)
	FindByColumn(ctx context.Context, columnID string) ([]models.Ticket, error)
	FindByProject(ctx context.Context, projectID string) ([]models.Ticket, error)
	MaxPositionInColumn(ctx context.Context, columnID string) (int, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	UpdatePosition(ctx context.Context, id string, position int) error
	Delete(ctx context.Context, id string) error
}

type CommentStore interface {
	Insert(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	FindByTicket(ctx context.Context, ticketID string) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByTicket(ctx context.Context, ticketID string) error
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
