package session

import (
	"errors"
	"fmt"
	"time"

	"driveacademy/models"
	"driveacademy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetAllSessions returns every session with its enrollment summary.
func (s *DefaultSessionService) GetAllSessions() ([]models.SessionResponse, error) {
	sessions, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.toResponses(sessions)
}

// GetSessionByID returns a single session with its enrolled customers.
func (s *DefaultSessionService) GetSessionByID(id string) (*models.SessionResponse, error) {
	session, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp, err := s.toResponse(*session)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateSession validates the candidate slot against every existing session
// and persists it. Validation runs here, server side, so a stale client
// snapshot cannot sneak a conflicting slot past the check.
func (s *DefaultSessionService) CreateSession(req models.SessionCreate) (*models.SessionResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions for slot validation: %w", err)
	}

	candidate := SlotCandidate{StartTime: req.StartTime, EndTime: req.EndTime}
	if err := s.Slots.Validate(candidate, activeOnly(existing), ""); err != nil {
		return nil, slotError(err)
	}

	now := time.Now()
	session := &models.Session{
		ID:                  uuid.New().String(),
		Title:               req.Title,
		Type:                req.Type,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Status:              models.SessionScheduled,
		LicenseType:         req.LicenseType,
		Notes:               req.Notes,
		MaxCapacity:         req.MaxCapacity,
		IsAvailable:         true,
		EnrolledCustomerIDs: []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.Repo.Create(session); err != nil {
		logger.Error("Failed to create session", zap.Error(err))
		return nil, err
	}

	logger.Info("Session created",
		zap.String("sessionID", session.ID),
		zap.Time("start", session.StartTime),
		zap.Time("end", session.EndTime))

	return &models.SessionResponse{Session: *session, CurrentEnrollment: 0}, nil
}

// UpdateSession applies a partial update. When the time window changes the
// merged window is re-validated with the session itself excluded from the
// overlap comparison.
func (s *DefaultSessionService) UpdateSession(id string, req models.SessionUpdate) (*models.SessionResponse, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}

	start, end := existing.StartTime, existing.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
		updateFields["startTime"] = start
	}
	if req.EndTime != nil {
		end = *req.EndTime
		updateFields["endTime"] = end
	}

	if req.StartTime != nil || req.EndTime != nil {
		all, err := s.Repo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to load sessions for slot validation: %w", err)
		}
		candidate := SlotCandidate{StartTime: start, EndTime: end}
		if err := s.Slots.Validate(candidate, activeOnly(all), id); err != nil {
			return nil, slotError(err)
		}
	}

	if req.Title != nil {
		updateFields["title"] = *req.Title
	}
	if req.Type != nil {
		updateFields["type"] = *req.Type
	}
	if req.Status != nil {
		updateFields["status"] = *req.Status
	}
	if req.LicenseType != nil {
		updateFields["licenseType"] = *req.LicenseType
	}
	if req.Notes != nil {
		updateFields["notes"] = *req.Notes
	}
	if req.MaxCapacity != nil {
		if *req.MaxCapacity < len(existing.EnrolledCustomerIDs) {
			return nil, utils.ValidationError{
				Message: fmt.Sprintf("capacity %d is below current enrollment %d", *req.MaxCapacity, len(existing.EnrolledCustomerIDs)),
			}
		}
		updateFields["maxCapacity"] = *req.MaxCapacity
	}
	if req.IsAvailable != nil {
		updateFields["isAvailable"] = *req.IsAvailable
	}

	if err := s.Repo.UpdateFields(id, updateFields); err != nil {
		return nil, err
	}

	return s.GetSessionByID(id)
}

// DeleteSession removes a session by ID.
func (s *DefaultSessionService) DeleteSession(id string) error {
	return s.Repo.Delete(id)
}

// activeOnly filters out cancelled sessions; a cancelled slot does not block
// the calendar.
func activeOnly(sessions []models.Session) []models.Session {
	active := sessions[:0:0]
	for _, s := range sessions {
		if s.Status != models.SessionCancelled {
			active = append(active, s)
		}
	}
	return active
}

// slotError maps validator failures onto the service error surface.
func slotError(err error) error {
	var rejection SlotRejection
	if errors.As(err, &rejection) {
		return utils.ValidationError{Message: rejection.Error()}
	}
	if errors.Is(err, ErrInvalidSlotInput) {
		return utils.ValidationError{Message: err.Error()}
	}
	return err
}

func (s *DefaultSessionService) toResponses(sessions []models.Session) ([]models.SessionResponse, error) {
	responses := make([]models.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		resp, err := s.toResponse(sess)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *DefaultSessionService) toResponse(session models.Session) (*models.SessionResponse, error) {
	resp := models.SessionResponse{
		Session:           session,
		CurrentEnrollment: len(session.EnrolledCustomerIDs),
	}

	if len(session.EnrolledCustomerIDs) > 0 {
		customers, err := s.CustomerRepo.GetByIDs(session.EnrolledCustomerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load enrolled customers for session %s: %w", session.ID, err)
		}
		for _, c := range customers {
			resp.EnrolledCustomers = append(resp.EnrolledCustomers, models.CustomerSummary{
				ID:        c.ID,
				FirstName: c.FirstName,
				LastName:  c.LastName,
				Email:     c.Email,
			})
		}
	}

	return &resp, nil
}
