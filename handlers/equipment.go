package handlers

import (
	"net/http"

	equipmentRepo "chcrent/database/repository/equipment"
	userRepo "chcrent/database/repository/user"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler exposes the per-center equipment catalog. Every read is
// scoped to the authenticated user's home center.
type EquipmentHandler struct {
	Repo  equipmentRepo.EquipmentRepository
	Users userRepo.UserRepository
}

// NewEquipmentHandler creates a new EquipmentHandler instance.
func NewEquipmentHandler(repo equipmentRepo.EquipmentRepository, users userRepo.UserRepository) *EquipmentHandler {
	return &EquipmentHandler{Repo: repo, Users: users}
}

// ListEquipmentHandler handles GET /api/equipment.
func (h *EquipmentHandler) ListEquipmentHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
		return
	}

	items, err := h.Repo.ListByCenter(usr.CenterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load equipment"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetEquipmentHandler handles GET /api/equipment/:id.
func (h *EquipmentHandler) GetEquipmentHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
		return
	}

	item, err := h.Repo.GetByID(usr.CenterID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load equipment"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "equipment not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}
