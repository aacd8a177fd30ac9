package orderRepo

import (
	"context"
	"fmt"

	"chcrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WatchUserOrders opens a change stream scoped to one user's orders in one
// center. Each event triggers a fresh ordered query rather than patching the
// previous snapshot locally, so the ordering always derives from the
// createdAt field regardless of event arrival order.
func (r *MongoOrderRepo) WatchUserOrders(ctx context.Context, chcID, userID string) (<-chan []models.Order, <-chan error, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "fullDocument.chcId", Value: chcID},
			{Key: "fullDocument.userId", Value: userID},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open order change stream: %w", err)
	}

	snapshots := make(chan []models.Order, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(snapshots)
		defer close(errs)
		defer stream.Close(context.Background())

		// Initial snapshot establishes the subscriber's baseline.
		if !r.pushSnapshot(ctx, chcID, userID, snapshots, errs) {
			return
		}

		for stream.Next(ctx) {
			if !r.pushSnapshot(ctx, chcID, userID, snapshots, errs) {
				return
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			select {
			case errs <- fmt.Errorf("order change stream closed: %w", err):
			case <-ctx.Done():
			}
		}
	}()

	return snapshots, errs, nil
}

// pushSnapshot re-queries the ordered list and delivers it, reporting
// whether the watch loop should continue.
func (r *MongoOrderRepo) pushSnapshot(ctx context.Context, chcID, userID string, snapshots chan<- []models.Order, errs chan<- error) bool {
	orders, err := r.ListByUser(chcID, userID)
	if err != nil {
		select {
		case errs <- err:
		case <-ctx.Done():
		}
		return false
	}
	select {
	case snapshots <- orders:
		return true
	case <-ctx.Done():
		return false
	}
}
