package programRepo

import "driveacademy/models"

// ProgramRepository defines methods for training-program data access.
type ProgramRepository interface {
	// GetByID retrieves a program by its unique ID.
	GetByID(id string) (*models.TrainingProgram, error)
	// GetAll retrieves all programs.
	GetAll() ([]models.TrainingProgram, error)
	// Create inserts a new program record.
	Create(program *models.TrainingProgram) error
	// UpdateFields applies a partial update to a program record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a program record by its ID.
	Delete(id string) error
}
