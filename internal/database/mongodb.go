package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB!")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (m *MongoDB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// Collection helpers
func (m *MongoDB) Projects() *mongo.Collection {
	return m.Database.Collection("projects")
}

func (m *MongoDB) Columns() *mongo.Collection {
	return m.Database.Collection("columns")
}

func (m *MongoDB) Tickets() *mongo.Collection {
	return m.Database.Collection("tickets")
}

func (m *MongoDB) Comments() *mongo.Collection {
	return m.Database.Collection("comments")
}

func (m *MongoDB) Users() *mongo.Collection {
	return m.Database.Collection("users")
}
