package repository

import (
	"context"
	"errors"
	"time"

	"issueboard-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TicketRepository handles ticket persistence.
type TicketRepository struct {
	collection *mongo.Collection
}

// NewTicketRepository creates the repository and ensures the column-order
// and project indexes exist.
func NewTicketRepository(db *mongo.Database) *TicketRepository {
	r := &TicketRepository{
		collection: db.Collection("tickets"),
	}

	ctx := context.Background()
	idxView := r.collection.Indexes()
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "columnId", Value: 1}, {Key: "position", Value: 1}},
		Options: options.Index().SetName("idx_column_position"),
	})
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "projectId", Value: 1}},
		Options: options.Index().SetName("idx_project_id"),
	})

	return r
}

func (r *TicketRepository) Insert(ctx context.Context, ticket *models.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, ticket)
	return err
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// FindByColumn returns the column's tickets ordered by position ascending.
func (r *TicketRepository) FindByColumn(ctx context.Context, columnID string) ([]models.Ticket, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"columnId": columnID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []models.Ticket
	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// FindByProject returns all of the project's tickets ordered by position
// ascending. Callers that need board order group them per column.
func (r *TicketRepository) FindByProject(ctx context.Context, projectID string) ([]models.Ticket, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []models.Ticket
	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// MaxPositionInColumn returns the highest ticket position in the column, or
// -1 when the column is empty.
func (r *TicketRepository) MaxPositionInColumn(ctx context.Context, columnID string) (int, error) {
	findOptions := options.FindOne().SetSort(bson.D{{Key: "position", Value: -1}})

	var ticket models.Ticket
	err := r.collection.FindOne(ctx, bson.M{"columnId": columnID}, findOptions).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return -1, nil
		}
		return 0, err
	}
	return ticket.Position, nil
}

func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	ticket.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":       ticket.Title,
			"description": ticket.Description,
			"priority":    ticket.Priority,
			"ticketType":  ticket.Type,
			"position":    ticket.Position,
			"storyPoints": ticket.StoryPoints,
			"dueDate":     ticket.DueDate,
			"columnId":    ticket.ColumnID,
			"assigneeId":  ticket.AssigneeID,
			"reporterId":  ticket.ReporterID,
			"updatedAt":   ticket.UpdatedAt,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": ticket.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePosition persists a single sibling shift during a move.
func (r *TicketRepository) UpdatePosition(ctx context.Context, id string, position int) error {
	update := bson.M{
		"$set": bson.M{
			"position":  position,
			"updatedAt": time.Now(),
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
