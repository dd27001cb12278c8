package session

import (
	"time"

	"driveacademy/models"
	"driveacademy/utils"

	"go.uber.org/zap"
)

// GetAvailableSessions returns open upcoming sessions that still have a seat.
func (s *DefaultSessionService) GetAvailableSessions() ([]models.SessionResponse, error) {
	sessions, err := s.Repo.GetAvailable(time.Now())
	if err != nil {
		return nil, err
	}
	open := sessions[:0:0]
	for _, sess := range sessions {
		if sess.HasCapacity() {
			open = append(open, sess)
		}
	}
	return s.toResponses(open)
}

// GetCustomerSessions returns the sessions the customer is enrolled in.
func (s *DefaultSessionService) GetCustomerSessions(customerID string) ([]models.SessionResponse, error) {
	sessions, err := s.Repo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(sessions)
}

// Enroll books the customer into a session. Business-rule failures come back
// as an unsuccessful EnrollmentResult rather than an error; the final capacity
// check happens inside the guarded repository update, so two concurrent
// enrollments cannot take the same last seat.
func (s *DefaultSessionService) Enroll(customerID, sessionID string) (*models.EnrollmentResult, error) {
	logger := utils.GetLogger()

	if _, err := s.CustomerRepo.GetByID(customerID); err != nil {
		return nil, err
	}
	session, err := s.Repo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsAvailable || session.Status != models.SessionScheduled {
		return &models.EnrollmentResult{Message: "This session is not available for enrollment"}, nil
	}
	if session.IsEnrolled(customerID) {
		return &models.EnrollmentResult{Message: "You are already enrolled in this session"}, nil
	}
	if !session.HasCapacity() {
		return &models.EnrollmentResult{Message: "Session is already at full capacity"}, nil
	}

	enrolled, err := s.Repo.AddCustomer(sessionID, customerID)
	if err != nil {
		logger.Error("Failed to enroll customer",
			zap.String("sessionID", sessionID),
			zap.String("customerID", customerID),
			zap.Error(err))
		return nil, err
	}
	if !enrolled {
		// Lost the race: another enrollment changed the session between our
		// read and the guarded update.
		session, err = s.Repo.GetByID(sessionID)
		if err != nil {
			return nil, err
		}
		if session.IsEnrolled(customerID) {
			return &models.EnrollmentResult{Message: "You are already enrolled in this session"}, nil
		}
		if !session.HasCapacity() {
			return &models.EnrollmentResult{Message: "Session is already at full capacity"}, nil
		}
		return &models.EnrollmentResult{Message: "This session is not available for enrollment"}, nil
	}

	logger.Info("Customer enrolled in session",
		zap.String("sessionID", sessionID),
		zap.String("customerID", customerID))
	return &models.EnrollmentResult{Success: true, Message: "Successfully enrolled in session"}, nil
}

// CancelEnrollment removes the customer's booking from a session.
func (s *DefaultSessionService) CancelEnrollment(customerID, sessionID string) (*models.EnrollmentResult, error) {
	if _, err := s.Repo.GetByID(sessionID); err != nil {
		return nil, err
	}

	removed, err := s.Repo.RemoveCustomer(sessionID, customerID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return &models.EnrollmentResult{Message: "You are not enrolled in this session"}, nil
	}

	utils.GetLogger().Info("Customer enrollment cancelled",
		zap.String("sessionID", sessionID),
		zap.String("customerID", customerID))
	return &models.EnrollmentResult{Success: true, Message: "Successfully canceled enrollment"}, nil
}
