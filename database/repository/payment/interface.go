package paymentRepo

import (
	"time"

	"driveacademy/models"
)

// PaymentRepository defines methods for payment data access.
type PaymentRepository interface {
	// GetByID retrieves a payment by its unique ID.
	GetByID(id string) (*models.Payment, error)
	// GetAll retrieves all payments.
	GetAll() ([]models.Payment, error)
	// GetByEnrollment retrieves the payments recorded against an enrollment.
	GetByEnrollment(enrollmentID string) ([]models.Payment, error)
	// GetByEnrollments retrieves payments for any of the given enrollments.
	GetByEnrollments(enrollmentIDs []string) ([]models.Payment, error)
	// GetBetween retrieves payments whose payment date falls in [from, to).
	GetBetween(from, to time.Time) ([]models.Payment, error)
	// TotalPaidByEnrollment sums the completed payments for an enrollment.
	TotalPaidByEnrollment(enrollmentID string) (float64, error)
	// Count returns the total number of payment records.
	Count() (int64, error)
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// UpdateFields applies a partial update to a payment record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a payment record by its ID.
	Delete(id string) error
}
