package handlers

import (
	"net/http"

	userRepo "chcrent/database/repository/user"
	"chcrent/models"
	"chcrent/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the manual booking endpoint.
type BookingHandler struct {
	Svc   booking.BookingService
	Users userRepo.UserRepository
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, users userRepo.UserRepository) *BookingHandler {
	return &BookingHandler{Svc: svc, Users: users}
}

// CreateBookingHandler handles POST /api/bookings: the app-driven booking
// flow. The voice-bot flow reaches the same engine through the assistant.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		EquipmentID string `json:"equipmentId" binding:"required"`
		BookingHrs  int    `json:"bookingHrs" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload", "details": err.Error()})
		return
	}

	usr, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
		return
	}

	receipt, err := h.Svc.PlaceBooking(c.Request.Context(), models.BookingRequest{
		UserID:      usr.ID,
		UserName:    usr.Name,
		ChcID:       usr.CenterID,
		EquipmentID: req.EquipmentID,
		Hours:       req.BookingHrs,
		Mode:        models.ModeApp,
	})
	if err != nil {
		c.JSON(bookingStatus(err), gin.H{
			"error": booking.MessageOf(err),
			"code":  booking.CodeOf(err),
		})
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// bookingStatus maps booking failure codes onto HTTP statuses.
func bookingStatus(err error) int {
	switch booking.CodeOf(err) {
	case booking.CodeAuthRequired:
		return http.StatusUnauthorized
	case booking.CodeEquipmentNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidRate:
		return http.StatusUnprocessableEntity
	case booking.CodeInvalidDuration:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
