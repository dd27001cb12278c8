package program

import (
	"time"

	enrollmentRepo "driveacademy/database/repository/enrollment"
	programRepo "driveacademy/database/repository/program"
	"driveacademy/models"
	"driveacademy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProgramService exposes training-program management.
type ProgramService interface {
	GetAllPrograms() ([]models.TrainingProgram, error)
	GetProgramByID(id string) (*models.TrainingProgram, error)
	CreateProgram(req models.ProgramCreate) (*models.TrainingProgram, error)
	UpdateProgram(id string, req models.ProgramUpdate) (*models.TrainingProgram, error)
	DeleteProgram(id string) error
}

// DefaultProgramService is the production implementation.
type DefaultProgramService struct {
	Repo           programRepo.ProgramRepository
	EnrollmentRepo enrollmentRepo.EnrollmentRepository
}

// GetAllPrograms returns every training program.
func (s *DefaultProgramService) GetAllPrograms() ([]models.TrainingProgram, error) {
	return s.Repo.GetAll()
}

// GetProgramByID returns a single training program.
func (s *DefaultProgramService) GetProgramByID(id string) (*models.TrainingProgram, error) {
	return s.Repo.GetByID(id)
}

// CreateProgram defines a new training program.
func (s *DefaultProgramService) CreateProgram(req models.ProgramCreate) (*models.TrainingProgram, error) {
	now := time.Now()
	program := &models.TrainingProgram{
		ID:            uuid.New().String(),
		Name:          req.Name,
		LicenseType:   req.LicenseType,
		Duration:      req.Duration,
		Description:   req.Description,
		Price:         req.Price,
		Prerequisites: req.Prerequisites,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(program); err != nil {
		utils.GetLogger().Error("Failed to create program", zap.Error(err))
		return nil, err
	}

	utils.GetLogger().Info("Program created",
		zap.String("programID", program.ID),
		zap.String("name", program.Name))
	return program, nil
}

// UpdateProgram applies a partial update to a program.
func (s *DefaultProgramService) UpdateProgram(id string, req models.ProgramUpdate) (*models.TrainingProgram, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.LicenseType != nil {
		fields["licenseType"] = *req.LicenseType
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, utils.ValidationError{Message: "price cannot be negative"}
		}
		fields["price"] = *req.Price
	}
	if req.Prerequisites != nil {
		fields["prerequisites"] = *req.Prerequisites
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// DeleteProgram removes a program unless enrollments still reference it.
func (s *DefaultProgramService) DeleteProgram(id string) error {
	enrollments, err := s.EnrollmentRepo.GetByProgram(id)
	if err != nil {
		return err
	}
	if len(enrollments) > 0 {
		return utils.ValidationError{Message: "program has enrollments and cannot be deleted"}
	}
	return s.Repo.Delete(id)
}
