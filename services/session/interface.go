package session

import (
	customerRepo "driveacademy/database/repository/customer"
	sessionRepo "driveacademy/database/repository/session"
	"driveacademy/models"
)

// SessionService exposes staff scheduling and customer enrollment operations.
type SessionService interface {
	// Staff scheduling
	GetAllSessions() ([]models.SessionResponse, error)
	GetSessionByID(id string) (*models.SessionResponse, error)
	CreateSession(req models.SessionCreate) (*models.SessionResponse, error)
	UpdateSession(id string, req models.SessionUpdate) (*models.SessionResponse, error)
	DeleteSession(id string) error

	// Customer-facing
	GetAvailableSessions() ([]models.SessionResponse, error)
	GetCustomerSessions(customerID string) ([]models.SessionResponse, error)
	Enroll(customerID, sessionID string) (*models.EnrollmentResult, error)
	CancelEnrollment(customerID, sessionID string) (*models.EnrollmentResult, error)
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Repo         sessionRepo.SessionRepository
	CustomerRepo customerRepo.CustomerRepository
	Slots        SlotValidator
}
