package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "tripdb"

// Connect opens a MongoDB connection from MONGO_URL. Returns nil when the
// variable is unset so the caller can use the seeded in-memory catalog.
func Connect() *mongo.Database {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB at %s: %v", mongoURL, err)
	}

	log.Printf("Connected to MongoDB at %s", mongoURL)
	return client.Database(databaseName)
}
