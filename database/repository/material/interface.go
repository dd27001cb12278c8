package materialRepo

import "driveacademy/models"

// MaterialRepository defines methods for training-material data access.
type MaterialRepository interface {
	// GetByID retrieves a material by its unique ID.
	GetByID(id string) (*models.TrainingMaterial, error)
	// GetAll retrieves all materials.
	GetAll() ([]models.TrainingMaterial, error)
	// GetByLicenseType retrieves materials for a license category,
	// restricted to the given visibility levels.
	GetByLicenseType(licenseType string, visibility []string) ([]models.TrainingMaterial, error)
	// Create inserts a new material record.
	Create(material *models.TrainingMaterial) error
	// UpdateFields applies a partial update to a material record.
	UpdateFields(id string, fields map[string]any) error
	// IncrementDownloadCount bumps a material's download counter.
	IncrementDownloadCount(id string) error
	// Delete removes a material record by its ID.
	Delete(id string) error
}
