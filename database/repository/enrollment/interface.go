package enrollmentRepo

import "driveacademy/models"

// EnrollmentRepository defines methods for enrollment data access.
type EnrollmentRepository interface {
	// GetByID retrieves an enrollment by its unique ID.
	GetByID(id string) (*models.Enrollment, error)
	// GetAll retrieves all enrollments.
	GetAll() ([]models.Enrollment, error)
	// GetByCustomer retrieves the enrollments belonging to a customer.
	GetByCustomer(customerID string) ([]models.Enrollment, error)
	// GetByProgram retrieves the enrollments for a training program.
	GetByProgram(programID string) ([]models.Enrollment, error)
	// Create inserts a new enrollment record.
	Create(enrollment *models.Enrollment) error
	// UpdateFields applies a partial update to an enrollment record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes an enrollment record by its ID.
	Delete(id string) error
}
