package feedback

import (
	"fmt"
	"time"

	customerRepo "driveacademy/database/repository/customer"
	feedbackRepo "driveacademy/database/repository/feedback"
	sessionRepo "driveacademy/database/repository/session"
	staffRepo "driveacademy/database/repository/staff"
	"driveacademy/models"
	"driveacademy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedbackService exposes instructor feedback management.
type FeedbackService interface {
	GetAllFeedback() ([]models.FeedbackResponse, error)
	GetFeedbackByID(id string) (*models.FeedbackResponse, error)
	GetSessionFeedback(sessionID string) ([]models.FeedbackResponse, error)
	GetCustomerFeedback(customerID string) ([]models.FeedbackResponse, error)
	GetInstructorFeedback(instructorID string) ([]models.FeedbackResponse, error)
	CreateFeedback(instructorID string, req models.FeedbackCreate) (*models.FeedbackResponse, error)
	UpdateFeedback(id string, req models.FeedbackUpdate) (*models.FeedbackResponse, error)
	DeleteFeedback(id string) error
}

// DefaultFeedbackService is the production implementation.
type DefaultFeedbackService struct {
	Repo         feedbackRepo.FeedbackRepository
	SessionRepo  sessionRepo.SessionRepository
	CustomerRepo customerRepo.CustomerRepository
	StaffRepo    staffRepo.StaffRepository
}

// GetAllFeedback returns every feedback entry with joined details.
func (s *DefaultFeedbackService) GetAllFeedback() ([]models.FeedbackResponse, error) {
	entries, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries)
}

// GetFeedbackByID returns a single feedback entry with joined details.
func (s *DefaultFeedbackService) GetFeedbackByID(id string) (*models.FeedbackResponse, error) {
	entry, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(*entry)
}

// GetSessionFeedback returns the feedback filed against a session.
func (s *DefaultFeedbackService) GetSessionFeedback(sessionID string) ([]models.FeedbackResponse, error) {
	entries, err := s.Repo.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries)
}

// GetCustomerFeedback returns the feedback about a customer.
func (s *DefaultFeedbackService) GetCustomerFeedback(customerID string) ([]models.FeedbackResponse, error) {
	entries, err := s.Repo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries)
}

// GetInstructorFeedback returns the feedback an instructor has filed.
func (s *DefaultFeedbackService) GetInstructorFeedback(instructorID string) ([]models.FeedbackResponse, error) {
	entries, err := s.Repo.GetByInstructor(instructorID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries)
}

// CreateFeedback files an instructor's review of a customer's session. The
// session and customer must exist, and the customer must have been enrolled.
func (s *DefaultFeedbackService) CreateFeedback(instructorID string, req models.FeedbackCreate) (*models.FeedbackResponse, error) {
	if !models.ValidRating(req.Rating) {
		return nil, utils.ValidationError{Message: fmt.Sprintf("unknown rating %q", req.Rating)}
	}

	session, err := s.SessionRepo.GetByID(req.SessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.CustomerRepo.GetByID(req.CustomerID); err != nil {
		return nil, err
	}
	if !session.IsEnrolled(req.CustomerID) {
		return nil, utils.ValidationError{Message: "customer is not enrolled in this session"}
	}

	entry := &models.Feedback{
		ID:           uuid.New().String(),
		SessionID:    req.SessionID,
		CustomerID:   req.CustomerID,
		InstructorID: instructorID,
		Comment:      req.Comment,
		Rating:       req.Rating,
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(entry); err != nil {
		utils.GetLogger().Error("Failed to create feedback", zap.Error(err))
		return nil, err
	}

	utils.GetLogger().Info("Feedback filed",
		zap.String("feedbackID", entry.ID),
		zap.String("sessionID", entry.SessionID),
		zap.String("customerID", entry.CustomerID))

	return s.toResponse(*entry)
}

// UpdateFeedback applies a partial update to a feedback entry.
func (s *DefaultFeedbackService) UpdateFeedback(id string, req models.FeedbackUpdate) (*models.FeedbackResponse, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Comment != nil {
		if len(*req.Comment) < 10 || len(*req.Comment) > 2000 {
			return nil, utils.ValidationError{Message: "comment must be between 10 and 2000 characters"}
		}
		fields["comment"] = *req.Comment
	}
	if req.Rating != nil {
		if !models.ValidRating(*req.Rating) {
			return nil, utils.ValidationError{Message: fmt.Sprintf("unknown rating %q", *req.Rating)}
		}
		fields["rating"] = *req.Rating
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.GetFeedbackByID(id)
}

// DeleteFeedback removes a feedback entry.
func (s *DefaultFeedbackService) DeleteFeedback(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultFeedbackService) toResponses(entries []models.Feedback) ([]models.FeedbackResponse, error) {
	responses := make([]models.FeedbackResponse, 0, len(entries))
	for _, e := range entries {
		resp, err := s.toResponse(e)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *DefaultFeedbackService) toResponse(entry models.Feedback) (*models.FeedbackResponse, error) {
	resp := models.FeedbackResponse{Feedback: entry}

	if cust, err := s.CustomerRepo.GetByID(entry.CustomerID); err == nil {
		resp.CustomerName = cust.FullName()
	}
	if instructor, err := s.StaffRepo.GetByID(entry.InstructorID); err == nil {
		resp.InstructorName = instructor.Name
	}
	if session, err := s.SessionRepo.GetByID(entry.SessionID); err == nil {
		resp.SessionTitle = session.Title
		resp.SessionStart = session.StartTime
	}

	return &resp, nil
}
