package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driveacademy/models"
	"driveacademy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies staff credentials and rotates the stored token.
func (s *DefaultStaffService) Authenticate(email, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	member, err := s.Repo.GetByEmail(email)
	if err != nil {
		if isNotFound(err) {
			return nil, utils.ValidationError{Message: "invalid email or password"}
		}
		logger.Error("Failed to fetch staff for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, utils.ValidationError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(member.ID, utils.AudienceStaff, member.Role, utils.TokenTTL)
	if err != nil {
		logger.Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := s.Repo.UpdateFields(member.ID, map[string]any{
		"tokenHash":   utils.HashToken(token),
		"lastLoginAt": time.Now(),
		"updatedAt":   time.Now(),
	}); err != nil {
		logger.Error("Failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	clearAuthCache(member.ID)

	return &models.AuthResponse{
		ID:    member.ID,
		Token: token,
		Email: member.Email,
		Name:  member.Name,
		Role:  member.Role,
	}, nil
}

// RevokeToken clears the stored token hash and evicts the cache entry.
func (s *DefaultStaffService) RevokeToken(staffID string) error {
	if err := s.Repo.UpdateFields(staffID, map[string]any{
		"tokenHash": "",
		"updatedAt": time.Now(),
	}); err != nil {
		return err
	}
	clearAuthCache(staffID)
	return nil
}

// GetProfile returns the staff member's own record.
func (s *DefaultStaffService) GetProfile(staffID string) (*models.Staff, error) {
	return s.Repo.GetByID(staffID)
}

// UpdateProfile applies the non-empty fields of the update payload.
func (s *DefaultStaffService) UpdateProfile(staffID string, req models.StaffUpdate) (*models.Staff, error) {
	fields := map[string]any{
		"updatedAt": time.Now(),
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.EmployeeID != "" {
		fields["employeeId"] = req.EmployeeID
	}
	if req.Department != "" {
		fields["department"] = req.Department
	}

	if err := s.Repo.UpdateFields(staffID, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(staffID)
}

// ChangePassword verifies the current password before setting a new one.
func (s *DefaultStaffService) ChangePassword(staffID, currentPassword, newPassword string) error {
	member, err := s.Repo.GetByID(staffID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(currentPassword)); err != nil {
		return utils.ValidationError{Message: "current password is incorrect"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}

	if err := s.Repo.UpdateFields(staffID, map[string]any{
		"passwordHash": string(hashed),
		"tokenHash":    "",
		"updatedAt":    time.Now(),
	}); err != nil {
		return err
	}
	clearAuthCache(staffID)
	return nil
}

// Register creates a new staff account. Only admins reach this operation;
// the role check lives in the middleware.
func (s *DefaultStaffService) Register(req models.StaffRegistration) (*models.Staff, error) {
	logger := utils.GetLogger()

	if !models.ValidStaffRole(req.Role) {
		return nil, utils.ValidationError{Message: fmt.Sprintf("unknown staff role %q", req.Role)}
	}

	if _, err := s.Repo.GetByEmail(req.Email); err == nil {
		return nil, utils.ValidationError{Message: "a staff member with this email already exists"}
	} else if !isNotFound(err) {
		logger.Error("Failed to check for existing staff", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	member := &models.Staff{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		Role:         req.Role,
		EmployeeID:   req.EmployeeID,
		Department:   req.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(member); err != nil {
		logger.Error("Failed to create staff member", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	logger.Info("Staff member registered",
		zap.String("staffID", member.ID),
		zap.String("role", member.Role))
	return member, nil
}

// GetAllStaff returns every staff member.
func (s *DefaultStaffService) GetAllStaff() ([]models.Staff, error) {
	return s.Repo.GetAll()
}

// GetStaffByID returns a single staff record.
func (s *DefaultStaffService) GetStaffByID(id string) (*models.Staff, error) {
	return s.Repo.GetByID(id)
}

// DeleteStaff removes a staff account.
func (s *DefaultStaffService) DeleteStaff(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	clearAuthCache(id)
	return nil
}

func clearAuthCache(id string) {
	cacheKey := utils.AuthCachePrefix + id
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache", zap.String("id", id), zap.Error(err))
	}
}

func isNotFound(err error) bool {
	var nf utils.NotFoundError
	return errors.As(err, &nf)
}
