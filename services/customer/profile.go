package customer

import (
	"time"

	"driveacademy/models"
)

// GetProfile returns the customer's own record.
func (s *DefaultCustomerService) GetProfile(customerID string) (*models.Customer, error) {
	return s.Repo.GetByID(customerID)
}

// UpdateProfile applies the non-empty fields of the update payload.
func (s *DefaultCustomerService) UpdateProfile(customerID string, req models.CustomerUpdate) (*models.Customer, error) {
	fields := map[string]any{
		"lastActiveAt": time.Now(),
	}
	if req.FirstName != "" {
		fields["firstName"] = req.FirstName
	}
	if req.LastName != "" {
		fields["lastName"] = req.LastName
	}
	if req.PhoneNumber != "" {
		fields["phoneNumber"] = req.PhoneNumber
	}
	if req.Address != "" {
		fields["address"] = req.Address
	}
	if req.LicenseNumber != "" {
		fields["licenseNumber"] = req.LicenseNumber
	}

	if err := s.Repo.UpdateFields(customerID, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(customerID)
}

// GetAllCustomers returns every registered customer.
func (s *DefaultCustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.Repo.GetAll()
}

// GetCustomerByID returns a single customer record.
func (s *DefaultCustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	return s.Repo.GetByID(id)
}

// DeleteCustomer removes a customer account.
func (s *DefaultCustomerService) DeleteCustomer(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	clearAuthCache(id)
	return nil
}
