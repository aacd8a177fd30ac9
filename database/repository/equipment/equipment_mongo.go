package equipmentRepo

import (
	"context"
	"fmt"
	"time"

	"chcrent/database"
	"chcrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEquipmentRepo implements EquipmentRepository using MongoDB.
type MongoEquipmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEquipmentRepo creates a new instance of EquipmentRepository using MongoDB.
func NewMongoEquipmentRepo() EquipmentRepository {
	coll := database.Collection("equipment")
	repo := &MongoEquipmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create equipment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEquipmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "chcId", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListByCenter retrieves every equipment record scoped to the given center.
func (r *MongoEquipmentRepo) ListByCenter(chcID string) ([]models.Equipment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"chcId": chcID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve equipment for center %s: %w", chcID, err)
	}
	defer cursor.Close(ctx)

	var items []models.Equipment
	for cursor.Next(ctx) {
		var e models.Equipment
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode equipment: %w", err)
		}
		items = append(items, e)
	}
	return items, nil
}

// GetByID retrieves one equipment record within a center.
func (r *MongoEquipmentRepo) GetByID(chcID, equipmentID string) (*models.Equipment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var e models.Equipment
	filter := bson.M{"chcId": chcID, "id": equipmentID}
	if err := r.coll.FindOne(ctx, filter).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch equipment %s in center %s: %w", equipmentID, chcID, err)
	}
	return &e, nil
}

// OptionsByCenter retrieves the reduced name/rate view for assistant grounding.
func (r *MongoEquipmentRepo) OptionsByCenter(chcID string) ([]models.EquipmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "name": 1, "rent": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"chcId": chcID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve equipment options for center %s: %w", chcID, err)
	}
	defer cursor.Close(ctx)

	var result []models.EquipmentOption
	for cursor.Next(ctx) {
		var o models.EquipmentOption
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode equipment option: %w", err)
		}
		result = append(result, o)
	}
	return result, nil
}
