package payment

import (
	customerRepo "driveacademy/database/repository/customer"
	enrollmentRepo "driveacademy/database/repository/enrollment"
	paymentRepo "driveacademy/database/repository/payment"
	programRepo "driveacademy/database/repository/program"
	"driveacademy/models"
)

// PaymentService exposes manual payment recording and lookup.
type PaymentService interface {
	GetAllPayments() ([]models.PaymentResponse, error)
	GetPaymentByID(id string) (*models.PaymentResponse, error)
	GetEnrollmentPayments(enrollmentID string) ([]models.PaymentResponse, error)
	GetCustomerPayments(customerID string) ([]models.PaymentResponse, error)
	RecordPayment(req models.PaymentCreate) (*models.PaymentResponse, error)
	UpdatePayment(id string, req models.PaymentUpdate) (*models.PaymentResponse, error)
	DeletePayment(id string) error
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo           paymentRepo.PaymentRepository
	EnrollmentRepo enrollmentRepo.EnrollmentRepository
	CustomerRepo   customerRepo.CustomerRepository
	ProgramRepo    programRepo.ProgramRepository
}
