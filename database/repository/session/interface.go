package sessionRepo

import (
	"time"

	"driveacademy/models"
)

// SessionRepository defines methods for training-session data access.
type SessionRepository interface {
	// GetByID retrieves a session by its unique ID.
	GetByID(id string) (*models.Session, error)
	// GetAll retrieves all sessions ordered by start time.
	GetAll() ([]models.Session, error)
	// GetBetween retrieves sessions whose start time falls in [from, to).
	GetBetween(from, to time.Time) ([]models.Session, error)
	// GetAvailable retrieves open sessions starting after the given instant.
	GetAvailable(after time.Time) ([]models.Session, error)
	// GetByCustomer retrieves the sessions a customer is enrolled in.
	GetByCustomer(customerID string) ([]models.Session, error)
	// Create inserts a new session record.
	Create(session *models.Session) error
	// UpdateFields applies a partial update to a session record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a session record by its ID.
	Delete(id string) error
	// AddCustomer enrolls a customer into a session. The update is guarded by
	// the session's capacity so two concurrent enrollments cannot overbook.
	AddCustomer(sessionID, customerID string) (bool, error)
	// RemoveCustomer removes a customer's enrollment from a session.
	RemoveCustomer(sessionID, customerID string) (bool, error)
}
