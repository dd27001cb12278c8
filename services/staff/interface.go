package staff

import (
	staffRepo "driveacademy/database/repository/staff"
	"driveacademy/models"
)

// StaffService exposes staff authentication and admin account management.
type StaffService interface {
	Authenticate(email, password string) (*models.AuthResponse, error)
	RevokeToken(staffID string) error
	GetProfile(staffID string) (*models.Staff, error)
	UpdateProfile(staffID string, req models.StaffUpdate) (*models.Staff, error)
	ChangePassword(staffID, currentPassword, newPassword string) error

	// Admin-only
	Register(req models.StaffRegistration) (*models.Staff, error)
	GetAllStaff() ([]models.Staff, error)
	GetStaffByID(id string) (*models.Staff, error)
	DeleteStaff(id string) error
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}
