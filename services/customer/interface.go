package customer

import (
	customerRepo "driveacademy/database/repository/customer"
	"driveacademy/models"
)

// CustomerService exposes customer self-service and staff-side account operations.
type CustomerService interface {
	// Self-service
	Register(req models.CustomerRegistration) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	RevokeToken(customerID string) error
	GetProfile(customerID string) (*models.Customer, error)
	UpdateProfile(customerID string, req models.CustomerUpdate) (*models.Customer, error)
	ChangePassword(customerID, currentPassword, newPassword string) error

	// Staff-facing
	GetAllCustomers() ([]models.Customer, error)
	GetCustomerByID(id string) (*models.Customer, error)
	DeleteCustomer(id string) error
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}
