package handlers

import (
	"net/http"

	orderRepo "chcrent/database/repository/order"
	userRepo "chcrent/database/repository/user"
	"chcrent/services/orders"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes order history, order detail, and the live order
// stream.
type OrderHandler struct {
	Repo    orderRepo.OrderRepository
	Tracker *orders.Tracker
	Users   userRepo.UserRepository
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(repo orderRepo.OrderRepository, tracker *orders.Tracker, users userRepo.UserRepository) *OrderHandler {
	return &OrderHandler{Repo: repo, Tracker: tracker, Users: users}
}

// ListOrdersHandler handles GET /api/orders: the user's orders, newest first.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
		return
	}

	list, err := h.Repo.ListByUser(usr.CenterID, usr.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetOrderHandler handles GET /api/orders/:id.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
		return
	}

	order, err := h.Repo.GetByID(usr.CenterID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	if order == nil || order.UserID != usr.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// StreamOrdersHandler handles GET /api/orders/stream: a server-sent event
// feed of order snapshots and status-transition notifications. The
// subscription tears down when the client disconnects.
func (h *OrderHandler) StreamOrdersHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
		return
	}

	sub, err := h.Tracker.Subscribe(c.Request.Context(), usr.CenterID, usr.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open order stream"})
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	for {
		select {
		case snap, open := <-sub.Snapshots():
			if !open {
				return
			}
			c.SSEvent("orders", snap)
			c.Writer.Flush()
		case ev, open := <-sub.Events():
			if !open {
				return
			}
			c.SSEvent("notification", ev)
			c.Writer.Flush()
		case streamErr, open := <-sub.Errs():
			if open && streamErr != nil {
				c.SSEvent("error", gin.H{"error": "order stream interrupted"})
				c.Writer.Flush()
			}
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
