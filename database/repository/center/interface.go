package centerRepo

import (
	"chcrent/models"
)

// CenterRepository defines read-only access to the service-center directory.
type CenterRepository interface {
	// GetAll retrieves every registered center (used by the signup picker).
	GetAll() ([]models.Center, error)
	// GetByID retrieves one center. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Center, error)
}
