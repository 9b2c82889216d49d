package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB holds the MongoDB connection
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// InitDB connects to MongoDB, verifies the connection and creates the
// unique indexes the stores rely on
func InitDB(cfg *Config) (*DB, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.MongoDB)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to MongoDB!")
	return &DB{Client: client, Database: db}, nil
}

// ensureIndexes backs the store-level uniqueness rules: username and
// email on User, the (follower, following) pair on Follow.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("User").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("Follow").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "followerId", Value: 1},
			{Key: "followingId", Value: 1},
		},
		Options: unique,
	})
	return err
}

// CloseDB closes the MongoDB connection
func (db *DB) CloseDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Client.Disconnect(ctx); err != nil {
		log.Printf("Error closing MongoDB connection: %v\n", err)
	} else {
		log.Println("MongoDB connection closed.")
	}
}
