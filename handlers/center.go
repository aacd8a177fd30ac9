package handlers

import (
	"net/http"

	centerRepo "chcrent/database/repository/center"

	"github.com/gin-gonic/gin"
)

// CenterHandler exposes the service-center directory.
type CenterHandler struct {
	Repo centerRepo.CenterRepository
}

// NewCenterHandler creates a new CenterHandler instance.
func NewCenterHandler(repo centerRepo.CenterRepository) *CenterHandler {
	return &CenterHandler{Repo: repo}
}

// ListCentersHandler handles GET /api/centers. It is public so the signup
// screen can populate its center picker.
func (h *CenterHandler) ListCentersHandler(c *gin.Context) {
	centers, err := h.Repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load centers"})
		return
	}
	c.JSON(http.StatusOK, centers)
}
