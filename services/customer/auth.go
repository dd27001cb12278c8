package customer

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

// Register creates a customer account, issues a token and stores its hash.
func (s *DefaultCustomerService) Register(req models.CustomerRegistration) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByEmail(req.Email); err == nil {
		return nil, utils.ValidationError{Message: "a customer with this email already exists"}
	} else if !isNotFound(err) {
		logger.Error("Failed to check for existing customer", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	cust := &models.Customer{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		NIC:          req.NIC,
		RegisteredAt: now,
		LastActiveAt: now,
	}

	if err := s.Repo.Create(cust); err != nil {
		logger.Error("Failed to create customer", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueToken(cust)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	logger.Info("Customer registered", zap.String("customerID", cust.ID))
	return &models.AuthResponse{
		ID:    cust.ID,
		Token: token,
		Email: cust.Email,
		Name:  cust.FullName(),
	}, nil
}

// Authenticate verifies credentials and rotates the customer's token.
func (s *DefaultCustomerService) Authenticate(email, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	cust, err := s.Repo.GetByEmail(email)
	if err != nil {
		if isNotFound(err) {
			return nil, utils.ValidationError{Message: "invalid email or password"}
		}
		logger.Error("Failed to fetch customer for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(password)); err != nil {
		return nil, utils.ValidationError{Message: "invalid email or password"}
	}

	token, err := s.issueToken(cust)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &models.AuthResponse{
		ID:    cust.ID,
		Token: token,
		Email: cust.Email,
		Name:  cust.FullName(),
	}, nil
}

// RevokeToken clears the stored token hash and evicts the cache entry,
// invalidating every copy of the customer's current token.
func (s *DefaultCustomerService) RevokeToken(customerID string) error {
	if err := s.Repo.UpdateFields(customerID, map[string]any{
		"tokenHash":    "",
		"lastActiveAt": time.Now(),
	}); err != nil {
		return err
	}
	clearAuthCache(customerID)
	return nil
}

// ChangePassword verifies the current password before setting a new one.
// The token hash is cleared so existing sessions have to sign in again.
func (s *DefaultCustomerService) ChangePassword(customerID, currentPassword, newPassword string) error {
	cust, err := s.Repo.GetByID(customerID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(currentPassword)); err != nil {
		return utils.ValidationError{Message: "current password is incorrect"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}

	if err := s.Repo.UpdateFields(customerID, map[string]any{
		"passwordHash": string(hashed),
		"tokenHash":    "",
		"lastActiveAt": time.Now(),
	}); err != nil {
		return err
	}
	clearAuthCache(customerID)
	return nil
}

// issueToken generates a fresh token, persists its hash and evicts any stale
// cache entry so the auth middleware reloads it.
func (s *DefaultCustomerService) issueToken(cust *models.Customer) (string, error) {
	token, err := utils.GenerateToken(cust.ID, utils.AudienceCustomer, "", utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return "", err
	}

	if err := s.Repo.UpdateFields(cust.ID, map[string]any{
		"tokenHash":    utils.HashToken(token),
		"lastActiveAt": time.Now(),
	}); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return "", err
	}

	clearAuthCache(cust.ID)
	return token, nil
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
