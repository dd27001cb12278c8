package models

import "time"

// Staff roles. Customers are handled separately.
const (
	RoleAdmin      = "ADMIN"
	RoleWorker     = "WORKER"
	RoleInstructor = "INSTRUCTOR"
)

// Staff represents a back-office user: admins, desk workers and instructors.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	EmployeeID   string    `bson:"employeeId" json:"employeeId,omitempty"`
	Department   string    `bson:"department" json:"department,omitempty"`
	TokenHash    string    `bson:"tokenHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
	LastLoginAt  time.Time `bson:"lastLoginAt" json:"lastLoginAt,omitempty"`
}

// ValidStaffRole reports whether role is one of the known staff roles.
func ValidStaffRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWorker, RoleInstructor:
		return true
	}
	return false
}

// StaffRegistration is the payload accepted when an admin creates a staff account.
type StaffRegistration struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	Role       string `json:"role" binding:"required"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
}

// StaffUpdate carries the mutable staff profile fields.
type StaffUpdate struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Department string `json:"department"`
}
