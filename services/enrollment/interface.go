package enrollment

import (
	customerRepo "driveacademy/database/repository/customer"
	enrollmentRepo "driveacademy/database/repository/enrollment"
	programRepo "driveacademy/database/repository/program"
	"driveacademy/models"
)

// EnrollmentService exposes program-enrollment management.
type EnrollmentService interface {
	GetAllEnrollments() ([]models.EnrollmentResponse, error)
	GetEnrollmentByID(id string) (*models.EnrollmentResponse, error)
	GetCustomerEnrollments(customerID string) ([]models.EnrollmentResponse, error)
	GetProgramEnrollments(programID string) ([]models.EnrollmentResponse, error)
	CreateEnrollment(req models.EnrollmentCreate) (*models.EnrollmentResponse, error)
	UpdateEnrollment(id string, req models.EnrollmentUpdate) (*models.EnrollmentResponse, error)
	DeleteEnrollment(id string) error
}

// DefaultEnrollmentService is the production implementation.
type DefaultEnrollmentService struct {
	Repo         enrollmentRepo.EnrollmentRepository
	CustomerRepo customerRepo.CustomerRepository
	ProgramRepo  programRepo.ProgramRepository
}
