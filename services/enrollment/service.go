package enrollment

import (
	"fmt"
	"time"

	"driveacademy/models"
	"driveacademy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetAllEnrollments returns every enrollment with customer and program details.
func (s *DefaultEnrollmentService) GetAllEnrollments() ([]models.EnrollmentResponse, error) {
	enrollments, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.toResponses(enrollments)
}

// GetEnrollmentByID returns a single enrollment with its joined details.
func (s *DefaultEnrollmentService) GetEnrollmentByID(id string) (*models.EnrollmentResponse, error) {
	enrollment, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(*enrollment)
}

// GetCustomerEnrollments returns the enrollments belonging to a customer.
func (s *DefaultEnrollmentService) GetCustomerEnrollments(customerID string) ([]models.EnrollmentResponse, error) {
	enrollments, err := s.Repo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(enrollments)
}

// GetProgramEnrollments returns the enrollments for a training program.
func (s *DefaultEnrollmentService) GetProgramEnrollments(programID string) ([]models.EnrollmentResponse, error) {
	enrollments, err := s.Repo.GetByProgram(programID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(enrollments)
}

// CreateEnrollment enrolls a customer into a program. The customer and the
// program must both exist; a customer cannot hold two open enrollments in the
// same program.
func (s *DefaultEnrollmentService) CreateEnrollment(req models.EnrollmentCreate) (*models.EnrollmentResponse, error) {
	if _, err := s.CustomerRepo.GetByID(req.CustomerID); err != nil {
		return nil, err
	}
	if _, err := s.ProgramRepo.GetByID(req.ProgramID); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByCustomer(req.CustomerID)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.ProgramID == req.ProgramID &&
			(e.Status == models.EnrollmentPending || e.Status == models.EnrollmentActive) {
			return nil, utils.ValidationError{Message: "customer already has an open enrollment in this program"}
		}
	}

	enrollment := &models.Enrollment{
		ID:             uuid.New().String(),
		CustomerID:     req.CustomerID,
		ProgramID:      req.ProgramID,
		Status:         models.EnrollmentPending,
		EnrollmentDate: time.Now(),
		StartDate:      req.StartDate,
		Notes:          req.Notes,
		IsPaid:         req.IsPaid,
	}

	if err := s.Repo.Create(enrollment); err != nil {
		utils.GetLogger().Error("Failed to create enrollment", zap.Error(err))
		return nil, err
	}

	utils.GetLogger().Info("Enrollment created",
		zap.String("enrollmentID", enrollment.ID),
		zap.String("customerID", enrollment.CustomerID),
		zap.String("programID", enrollment.ProgramID))

	return s.toResponse(*enrollment)
}

// UpdateEnrollment applies a partial update. Moving to COMPLETED stamps the
// completion date when the caller did not supply one.
func (s *DefaultEnrollmentService) UpdateEnrollment(id string, req models.EnrollmentUpdate) (*models.EnrollmentResponse, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Status != nil {
		if !models.ValidEnrollmentStatus(*req.Status) {
			return nil, utils.ValidationError{Message: fmt.Sprintf("unknown enrollment status %q", *req.Status)}
		}
		fields["status"] = *req.Status
		if *req.Status == models.EnrollmentCompleted && req.CompletionDate == nil {
			fields["completionDate"] = time.Now()
		}
	}
	if req.StartDate != nil {
		fields["startDate"] = *req.StartDate
	}
	if req.CompletionDate != nil {
		fields["completionDate"] = *req.CompletionDate
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.IsPaid != nil {
		fields["isPaid"] = *req.IsPaid
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	return s.GetEnrollmentByID(id)
}

// DeleteEnrollment removes an enrollment record.
func (s *DefaultEnrollmentService) DeleteEnrollment(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultEnrollmentService) toResponses(enrollments []models.Enrollment) ([]models.EnrollmentResponse, error) {
	responses := make([]models.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		resp, err := s.toResponse(e)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *DefaultEnrollmentService) toResponse(enrollment models.Enrollment) (*models.EnrollmentResponse, error) {
	resp := models.EnrollmentResponse{Enrollment: enrollment}

	cust, err := s.CustomerRepo.GetByID(enrollment.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer for enrollment %s: %w", enrollment.ID, err)
	}
	resp.CustomerName = cust.FullName()
	resp.CustomerEmail = cust.Email

	program, err := s.ProgramRepo.GetByID(enrollment.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("failed to load program for enrollment %s: %w", enrollment.ID, err)
	}
	resp.ProgramName = program.Name
	resp.ProgramPrice = program.Price

	return &resp, nil
}
