package equipmentRepo

import (
	"chcrent/models"
)

// EquipmentRepository defines read-only access to a center's equipment
// catalog. The catalog is owned by back-office tooling; this service never
// writes it.
type EquipmentRepository interface {
	// ListByCenter retrieves every equipment record scoped to the given center.
	ListByCenter(chcID string) ([]models.Equipment, error)
	// GetByID retrieves one equipment record within a center.
	// Returns (nil, nil) when no such record exists.
	GetByID(chcID, equipmentID string) (*models.Equipment, error)
	// OptionsByCenter retrieves the reduced name/rate view used as assistant
	// grounding context.
	OptionsByCenter(chcID string) ([]models.EquipmentOption, error)
}
