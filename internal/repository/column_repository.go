package repository

import (
	"context"
	"errors"

	"issueboard-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ColumnRepository handles board column persistence.
type ColumnRepository struct {
	collection *mongo.Collection
}

// NewColumnRepository creates the repository and ensures the board-order
// index exists.
func NewColumnRepository(db *mongo.Database) *ColumnRepository {
	r := &ColumnRepository{
		collection: db.Collection("columns"),
	}

	ctx := context.Background()
	_, _ = r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "position", Value: 1}},
		Options: options.Index().SetName("idx_project_position"),
	})

	return r
}

func (r *ColumnRepository) Insert(ctx context.Context, column *models.Column) error {
	if column.ID == "" {
		column.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, column)
	return err
}

func (r *ColumnRepository) FindByID(ctx context.Context, id string) (*models.Column, error) {
	var column models.Column
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&column)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &column, nil
}

// FindByProject returns the project's columns ordered by position ascending.
func (r *ColumnRepository) FindByProject(ctx context.Context, projectID string) ([]models.Column, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var columns []models.Column
	if err = cursor.All(ctx, &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

func (r *ColumnRepository) CountByProject(ctx context.Context, projectID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *ColumnRepository) Update(ctx context.Context, column *models.Column) error {
	update := bson.M{
		"$set": bson.M{
			"name":  column.Name,
			"color": column.Color,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": column.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ColumnRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
