package staffRepo

import "driveacademy/models"

// StaffRepository defines methods for staff data access.
type StaffRepository interface {
	// GetByID retrieves a staff member by its unique ID.
	GetByID(id string) (*models.Staff, error)
	// GetByEmail retrieves a staff member by its email address.
	GetByEmail(email string) (*models.Staff, error)
	// GetAll retrieves all staff members.
	GetAll() ([]models.Staff, error)
	// Create inserts a new staff record.
	Create(staff *models.Staff) error
	// UpdateFields applies a partial update to a staff record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a staff record by its ID.
	Delete(id string) error
}
