package report

import (
	"time"

	customerRepo "driveacademy/database/repository/customer"
	enrollmentRepo "driveacademy/database/repository/enrollment"
	paymentRepo "driveacademy/database/repository/payment"
	programRepo "driveacademy/database/repository/program"
	sessionRepo "driveacademy/database/repository/session"
	"driveacademy/models"
	"driveacademy/utils"
)

// ReportService builds the aggregated dashboard served to staff.
type ReportService interface {
	GetSummary(from, to time.Time) (*models.ReportSummary, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	CustomerRepo   customerRepo.CustomerRepository
	EnrollmentRepo enrollmentRepo.EnrollmentRepository
	PaymentRepo    paymentRepo.PaymentRepository
	ProgramRepo    programRepo.ProgramRepository
	SessionRepo    sessionRepo.SessionRepository
}

// GetSummary aggregates customers, revenue, enrollments and sessions over
// [from, to). A zero range defaults to the trailing twelve months.
func (s *DefaultReportService) GetSummary(from, to time.Time) (*models.ReportSummary, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}
	if !from.Before(to) {
		return nil, utils.ValidationError{Message: "report range start must be before its end"}
	}

	customers, err := s.CustomerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	newCustomers, err := s.CustomerRepo.CountRegisteredBetween(from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.GetBetween(from, to)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.GetAll()
	if err != nil {
		return nil, err
	}
	programs, err := s.ProgramRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sessions, err := s.SessionRepo.GetBetween(from, to)
	if err != nil {
		return nil, err
	}

	return &models.ReportSummary{
		From:                 from,
		To:                   to,
		TotalCustomers:       len(customers),
		NewCustomers:         int(newCustomers),
		TotalRevenue:         totalRevenue(payments),
		ActiveEnrollees:      activeEnrollees(enrollments),
		RevenueByMonth:       revenueByMonth(payments),
		EnrollmentsByProgram: enrollmentsByProgram(enrollments, programs),
		SessionsByType:       sessionsByType(sessions),
		SessionsByStatus:     sessionsByStatus(sessions),
		PaymentsByMethod:     paymentsByMethod(payments),
	}, nil
}
