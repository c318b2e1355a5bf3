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

// CommentRepository handles comment persistence.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates the repository and ensures the per-ticket
// listing index exists.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	r := &CommentRepository{
		collection: db.Collection("comments"),
	}

	ctx := context.Background()
	_, _ = r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ticketId", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("idx_ticket_created"),
	})

	return r
}

func (r *CommentRepository) Insert(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// FindByTicket returns the ticket's comments ordered by creation time
// ascending.
func (r *CommentRepository) FindByTicket(ctx context.Context, ticketID string) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"ticketId": ticketID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	comment.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"content":   comment.Content,
			"updatedAt": comment.UpdatedAt,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": comment.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByTicket removes every comment owned by the ticket.
func (r *CommentRepository) DeleteByTicket(ctx context.Context, ticketID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"ticketId": ticketID})
	return err
}
