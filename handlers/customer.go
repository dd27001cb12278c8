package handlers

import (
	"net/http"

	"driveacademy/middleware"
	"driveacademy/models"
	"driveacademy/services/customer"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler serves customer self-service and staff-side account endpoints.
type CustomerHandler struct {
	Service customer.CustomerService
}

// RegisterHandler handles POST /api/customers/register.
func (h *CustomerHandler) RegisterHandler(c *gin.Context) {
	var req models.CustomerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request", err.Error())
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/customers/login.
func (h *CustomerHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/customers/logout.
func (h *CustomerHandler) LogoutHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	if err := h.Service.RevokeToken(customerID); err != nil {
		utils.GetLogger().Error("Failed to revoke customer token",
			zap.String("customerID", customerID), zap.Error(err))
		utils.JSONError(c, utils.StatusForError(err), "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler handles GET /api/customers/me.
func (h *CustomerHandler) GetProfileHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	profile, err := h.Service.GetProfile(customerID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to retrieve profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /api/customers/me.
func (h *CustomerHandler) UpdateProfileHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)

	var req models.CustomerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update request", err.Error())
		return
	}

	profile, err := h.Service.UpdateProfile(customerID, req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ChangePasswordHandler handles PUT /api/customers/me/password.
func (h *CustomerHandler) ChangePasswordHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)

	var req models.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid password change request", err.Error())
		return
	}

	if err := h.Service.ChangePassword(customerID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to change password", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// ListCustomersHandler handles GET /api/staff/customers.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.Service.GetAllCustomers()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list customers", err.Error())
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerHandler handles GET /api/staff/customers/:id.
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	cust, err := h.Service.GetCustomerByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Customer not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, cust)
}

// UpdateCustomerHandler handles PUT /api/staff/customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	var req models.CustomerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update request", err.Error())
		return
	}

	cust, err := h.Service.UpdateProfile(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, cust)
}

// DeleteCustomerHandler handles DELETE /api/staff/customers/:id.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	if err := h.Service.DeleteCustomer(c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
