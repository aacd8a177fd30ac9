package centerRepo

import (
	"context"
	"fmt"
	"time"

	"chcrent/database"
	"chcrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCenterRepo implements CenterRepository using MongoDB.
type MongoCenterRepo struct {
	coll *mongo.Collection
}

// NewMongoCenterRepo creates a new instance of CenterRepository using MongoDB.
func NewMongoCenterRepo() CenterRepository {
	return &MongoCenterRepo{coll: database.Collection("chcCenters")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves every registered center.
func (r *MongoCenterRepo) GetAll() ([]models.Center, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve centers: %w", err)
	}
	defer cursor.Close(ctx)

	var centers []models.Center
	for cursor.Next(ctx) {
		var c models.Center
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode center: %w", err)
		}
		centers = append(centers, c)
	}
	return centers, nil
}

// GetByID retrieves one center.
func (r *MongoCenterRepo) GetByID(id string) (*models.Center, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Center
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch center %s: %w", id, err)
	}
	return &c, nil
}
