package customerRepo

import (
	"time"

	"driveacademy/models"
)

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// GetByEmail retrieves a customer by its email address.
	GetByEmail(email string) (*models.Customer, error)
	// GetAll retrieves all customers.
	GetAll() ([]models.Customer, error)
	// GetByIDs retrieves the customers whose IDs appear in ids.
	GetByIDs(ids []string) ([]models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// UpdateFields applies a partial update to a customer record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a customer record by its ID.
	Delete(id string) error
	// CountRegisteredBetween counts customers registered in [from, to).
	CountRegisteredBetween(from, to time.Time) (int64, error)
}
