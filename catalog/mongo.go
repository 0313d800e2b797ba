package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfare/models"
)

// MongoStore reads the catalog from MongoDB collections. Reads are the only
// suspension point of a planning turn, so transient failures are retried
// with backoff instead of failing the turn outright.
type MongoStore struct {
	destinations *mongo.Collection
	hotels       *mongo.Collection
	activities   *mongo.Collection

	attempts int
	baseWait time.Duration
}

type destinationDoc struct {
	Name   string              `bson:"name"`
	Key    string              `bson:"key"`
	Center *models.Coordinates `bson:"center,omitempty"`
}

func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{
		destinations: database.Collection("destinations"),
		hotels:       database.Collection("hotels"),
		activities:   database.Collection("activities"),
		attempts:     3,
		baseWait:     200 * time.Millisecond,
	}
}

func (s *MongoStore) Destinations(ctx context.Context) ([]string, error) {
	var out []string
	err := s.withRetry(ctx, "destinations", func() error {
		cursor, err := s.destinations.Find(ctx, bson.M{})
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		out = out[:0]
		for cursor.Next(ctx) {
			var d destinationDoc
			if err := cursor.Decode(&d); err == nil {
				out = append(out, d.Name)
			}
		}
		return cursor.Err()
	})
	return out, err
}

func (s *MongoStore) HotelsFor(ctx context.Context, destination string) ([]models.HotelCandidate, error) {
	hotels := []models.HotelCandidate{}
	err := s.withRetry(ctx, "hotels", func() error {
		cursor, err := s.hotels.Find(ctx, bson.M{"destination": destKey(destination)})
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		hotels = hotels[:0]
		for cursor.Next(ctx) {
			var h models.HotelCandidate
			if err := cursor.Decode(&h); err == nil {
				hotels = append(hotels, h)
			}
		}
		return cursor.Err()
	})
	return hotels, err
}

func (s *MongoStore) ActivitiesFor(ctx context.Context, destination string) ([]models.ActivityCandidate, error) {
	activities := []models.ActivityCandidate{}
	err := s.withRetry(ctx, "activities", func() error {
		cursor, err := s.activities.Find(ctx, bson.M{"destination": destKey(destination)})
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		activities = activities[:0]
		for cursor.Next(ctx) {
			var a models.ActivityCandidate
			if err := cursor.Decode(&a); err == nil {
				activities = append(activities, a)
			}
		}
		return cursor.Err()
	})
	return activities, err
}

func (s *MongoStore) CenterOf(ctx context.Context, destination string) (*models.Coordinates, error) {
	var center *models.Coordinates
	err := s.withRetry(ctx, "center", func() error {
		var d destinationDoc
		err := s.destinations.FindOne(ctx, bson.M{"key": destKey(destination)}).Decode(&d)
		if err == mongo.ErrNoDocuments {
			center = nil
			return nil
		}
		if err != nil {
			return err
		}
		center = d.Center
		return nil
	})
	return center, err
}

func (s *MongoStore) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	wait := s.baseWait
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == s.attempts {
			break
		}
		log.Printf("catalog: %s read failed (attempt %d/%d): %v", op, attempt, s.attempts, err)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		wait *= 2
	}
	return fmt.Errorf("catalog %s read: %w", op, err)
}

func destKey(destination string) string {
	return strings.ToLower(strings.TrimSpace(destination))
}
