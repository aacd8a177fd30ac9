package booking

import (
	"context"
	"fmt"

	"chcrent/models"
	"chcrent/utils"

	"go.uber.org/zap"
)

// Hour bounds mirror the rental form's duration picker.
const (
	MinBookingHours = 1
	MaxBookingHours = 24
)

// PlaceBooking validates the request, re-resolves the authoritative rate
// from the catalog, and persists a new Pending order. The rate stored on the
// order is the one fetched here; estimatedCost is rate × hours in whole
// rupees, computed exactly once.
func (s *DefaultBookingService) PlaceBooking(ctx context.Context, req models.BookingRequest) (*models.BookingReceipt, error) {
	if req.UserID == "" || req.ChcID == "" {
		return nil, newError(CodeAuthRequired, "Authentication failed. Please log in again.")
	}
	if req.EquipmentID == "" {
		return nil, newError(CodeEquipmentNotFound, "Invalid equipment ID provided.")
	}
	if req.Hours < MinBookingHours || req.Hours > MaxBookingHours {
		return nil, newError(CodeInvalidDuration,
			fmt.Sprintf("Booking hours must be between %d and %d.", MinBookingHours, MaxBookingHours))
	}

	mode := req.Mode
	if mode == "" {
		mode = models.ModeApp
	}

	equipment, err := s.EquipmentRepo.GetByID(req.ChcID, req.EquipmentID)
	if err != nil {
		return nil, wrapError(CodePersistenceError, "Failed to retrieve equipment details.", err)
	}
	if equipment == nil {
		return nil, newError(CodeEquipmentNotFound,
			fmt.Sprintf("Equipment with ID %s not found at your center.", req.EquipmentID))
	}
	// A zero rate is a catalog data error, not a free rental.
	if equipment.Rent <= 0 {
		return nil, newError(CodeInvalidRate, "Equipment rate is missing or zero. Cannot book.")
	}

	estimatedCost := equipment.Rent * int64(req.Hours)

	codes := s.Codes
	if codes == nil {
		codes = &utils.DeliveryCodeGenerator{}
	}
	deliveryOTP, err := codes.Generate()
	if err != nil {
		return nil, wrapError(CodePersistenceError, "An error occurred during booking. Please try again.", err)
	}

	order := models.Order{
		EquipmentID:   equipment.ID,
		EquipmentName: equipment.Name,
		EquipmentRent: equipment.Rent,
		BookingHrs:    req.Hours,
		EstimatedCost: estimatedCost,
		DeliveryOTP:   deliveryOTP,
		Status:        models.StatusPending,
		BookingMode:   mode,
		UserID:        req.UserID,
		UserName:      req.UserName,
		ChcID:         req.ChcID,
	}
	if err := s.OrderRepo.Create(&order); err != nil {
		return nil, wrapError(CodePersistenceError, "An error occurred during booking. Please try again.", err)
	}

	utils.GetLogger().Info("order placed",
		zap.String("orderId", order.ID),
		zap.String("chcId", order.ChcID),
		zap.String("equipmentId", order.EquipmentID),
		zap.String("bookingMode", string(mode)),
		zap.Int64("estimatedCost", estimatedCost),
	)

	return &models.BookingReceipt{
		OrderID:       order.ID,
		EquipmentName: order.EquipmentName,
		BookingHrs:    order.BookingHrs,
		EstimatedCost: order.EstimatedCost,
		DeliveryOTP:   order.DeliveryOTP,
		Message: fmt.Sprintf("Successfully booked %s for %d hours (Order ID: %s). Estimated cost: ₹%d.",
			order.EquipmentName, order.BookingHrs, order.ShortID(), order.EstimatedCost),
	}, nil
}
