package feedbackRepo

import "driveacademy/models"

// FeedbackRepository defines methods for feedback data access.
type FeedbackRepository interface {
	// GetByID retrieves feedback by its unique ID.
	GetByID(id string) (*models.Feedback, error)
	// GetAll retrieves all feedback.
	GetAll() ([]models.Feedback, error)
	// GetBySession retrieves feedback filed against a session.
	GetBySession(sessionID string) ([]models.Feedback, error)
	// GetByCustomer retrieves feedback about a customer.
	GetByCustomer(customerID string) ([]models.Feedback, error)
	// GetByInstructor retrieves feedback filed by an instructor.
	GetByInstructor(instructorID string) ([]models.Feedback, error)
	// Create inserts a new feedback record.
	Create(feedback *models.Feedback) error
	// UpdateFields applies a partial update to a feedback record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a feedback record by its ID.
	Delete(id string) error
}
