package handlers

import (
	"net/http"

	userRepo "chcrent/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every handler group plus the user repository the
// auth middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	UserHandler      *UserHandler
	CenterHandler    *CenterHandler
	EquipmentHandler *EquipmentHandler
	BookingHandler   *BookingHandler
	OrderHandler     *OrderHandler
	AssistantHandler *AssistantHandler
}

// currentUserID returns the authenticated user ID set by the auth middleware,
// aborting with 401 if it is missing.
func currentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	return userID, true
}
