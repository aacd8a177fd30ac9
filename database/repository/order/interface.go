package orderRepo

import (
	"context"

	"chcrent/models"
)

// OrderRepository defines data access for rental orders. Orders are created
// once in state Pending; every later status transition is written by
// back-office tooling and only observed here.
type OrderRepository interface {
	// Create inserts a new order document, assigning its id and timestamps.
	Create(order *models.Order) error
	// ListByUser retrieves a user's orders within a center, newest first.
	ListByUser(chcID, userID string) ([]models.Order, error)
	// GetByID retrieves one order within a center.
	// Returns (nil, nil) when no such order exists.
	GetByID(chcID, orderID string) (*models.Order, error)
	// WatchUserOrders opens a live subscription on a user's orders. Every
	// relevant change produces a fresh snapshot, ordered by createdAt
	// descending; an initial snapshot is always delivered first. Both
	// channels close once ctx is cancelled or the stream fails.
	WatchUserOrders(ctx context.Context, chcID, userID string) (<-chan []models.Order, <-chan error, error)
}
