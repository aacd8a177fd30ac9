package booking

import (
	"context"

	equipmentRepo "chcrent/database/repository/equipment"
	orderRepo "chcrent/database/repository/order"
	"chcrent/models"
	"chcrent/utils"
)

// BookingService is the single order-creation path. Both the rental form
// and the voice assistant submit through it; neither may supply a rate.
type BookingService interface {
	PlaceBooking(ctx context.Context, req models.BookingRequest) (*models.BookingReceipt, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	EquipmentRepo equipmentRepo.EquipmentRepository
	OrderRepo     orderRepo.OrderRepository
	Codes         *utils.DeliveryCodeGenerator // nil means crypto/rand-backed default
}
