package material

import (
	"time"

	enrollmentRepo "driveacademy/database/repository/enrollment"
	materialRepo "driveacademy/database/repository/material"
	"driveacademy/models"
	"driveacademy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaterialService exposes training-material metadata management.
type MaterialService interface {
	GetAllMaterials() ([]models.TrainingMaterial, error)
	GetMaterialByID(id string) (*models.TrainingMaterial, error)
	// GetMaterialsForCustomer returns the materials for a license category the
	// customer is allowed to see.
	GetMaterialsForCustomer(customerID, licenseType string) ([]models.TrainingMaterial, error)
	CreateMaterial(req models.MaterialCreate, uploadedBy string) (*models.TrainingMaterial, error)
	UpdateMaterial(id string, req models.MaterialUpdate) (*models.TrainingMaterial, error)
	RegisterDownload(id string) (*models.TrainingMaterial, error)
	DeleteMaterial(id string) error
}

// DefaultMaterialService is the production implementation.
type DefaultMaterialService struct {
	Repo           materialRepo.MaterialRepository
	EnrollmentRepo enrollmentRepo.EnrollmentRepository
}

// GetAllMaterials returns every material record.
func (s *DefaultMaterialService) GetAllMaterials() ([]models.TrainingMaterial, error) {
	return s.Repo.GetAll()
}

// GetMaterialByID returns a single material record.
func (s *DefaultMaterialService) GetMaterialByID(id string) (*models.TrainingMaterial, error) {
	return s.Repo.GetByID(id)
}

// GetMaterialsForCustomer lists the materials for a license category. Customers
// with an open enrollment also see ENROLLED-restricted materials.
func (s *DefaultMaterialService) GetMaterialsForCustomer(customerID, licenseType string) ([]models.TrainingMaterial, error) {
	visibility := []string{models.VisibilityAll}

	enrollments, err := s.EnrollmentRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	for _, e := range enrollments {
		if e.Status == models.EnrollmentPending || e.Status == models.EnrollmentActive {
			visibility = append(visibility, models.VisibilityEnrolled)
			break
		}
	}

	return s.Repo.GetByLicenseType(licenseType, visibility)
}

// CreateMaterial registers the metadata for an externally hosted document.
func (s *DefaultMaterialService) CreateMaterial(req models.MaterialCreate, uploadedBy string) (*models.TrainingMaterial, error) {
	if req.Visibility != models.VisibilityAll && req.Visibility != models.VisibilityEnrolled {
		return nil, utils.ValidationError{Message: "visibility must be ALL or ENROLLED"}
	}

	material := &models.TrainingMaterial{
		ID:             uuid.New().String(),
		Name:           req.Name,
		FileName:       req.FileName,
		FileType:       req.FileType,
		Category:       req.Category,
		Description:    req.Description,
		FileSize:       req.FileSize,
		ForLicenseType: req.ForLicenseType,
		Visibility:     req.Visibility,
		UploadDate:     time.Now(),
		UploadedBy:     uploadedBy,
	}

	if err := s.Repo.Create(material); err != nil {
		utils.GetLogger().Error("Failed to create material", zap.Error(err))
		return nil, err
	}

	utils.GetLogger().Info("Material registered",
		zap.String("materialID", material.ID),
		zap.String("name", material.Name))
	return material, nil
}

// UpdateMaterial applies a partial update to a material record.
func (s *DefaultMaterialService) UpdateMaterial(id string, req models.MaterialUpdate) (*models.TrainingMaterial, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ForLicenseType != nil {
		fields["forLicenseType"] = *req.ForLicenseType
	}
	if req.Visibility != nil {
		if *req.Visibility != models.VisibilityAll && *req.Visibility != models.VisibilityEnrolled {
			return nil, utils.ValidationError{Message: "visibility must be ALL or ENROLLED"}
		}
		fields["visibility"] = *req.Visibility
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(id)
}

// RegisterDownload bumps the download counter and returns the fresh record.
func (s *DefaultMaterialService) RegisterDownload(id string) (*models.TrainingMaterial, error) {
	if err := s.Repo.IncrementDownloadCount(id); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// DeleteMaterial removes a material record.
func (s *DefaultMaterialService) DeleteMaterial(id string) error {
	return s.Repo.Delete(id)
}
