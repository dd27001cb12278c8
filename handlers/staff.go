package handlers

import (
	"net/http"

	"driveacademy/middleware"
	"driveacademy/models"
	"driveacademy/services/staff"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves staff authentication and admin account endpoints.
type StaffHandler struct {
	Service staff.StaffService
}

// LoginHandler handles POST /api/staff/login.
func (h *StaffHandler) LoginHandler(c *gin.Context) {
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

// LogoutHandler handles POST /api/staff/logout.
func (h *StaffHandler) LogoutHandler(c *gin.Context) {
	staffID := c.GetString(middleware.ContextStaffID)
	if err := h.Service.RevokeToken(staffID); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler handles GET /api/staff/me.
func (h *StaffHandler) GetProfileHandler(c *gin.Context) {
	staffID := c.GetString(middleware.ContextStaffID)
	profile, err := h.Service.GetProfile(staffID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to retrieve profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /api/staff/me.
func (h *StaffHandler) UpdateProfileHandler(c *gin.Context) {
	staffID := c.GetString(middleware.ContextStaffID)

	var req models.StaffUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update request", err.Error())
		return
	}

	profile, err := h.Service.UpdateProfile(staffID, req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ChangePasswordHandler handles PUT /api/staff/me/password.
func (h *StaffHandler) ChangePasswordHandler(c *gin.Context) {
	staffID := c.GetString(middleware.ContextStaffID)

	var req models.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid password change request", err.Error())
		return
	}

	if err := h.Service.ChangePassword(staffID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to change password", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// RegisterHandler handles POST /api/staff/accounts. Admin only.
func (h *StaffHandler) RegisterHandler(c *gin.Context) {
	var req models.StaffRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request", err.Error())
		return
	}

	member, err := h.Service.Register(req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListStaffHandler handles GET /api/staff/accounts. Admin only.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	members, err := h.Service.GetAllStaff()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetStaffHandler handles GET /api/staff/accounts/:id. Admin only.
func (h *StaffHandler) GetStaffHandler(c *gin.Context) {
	member, err := h.Service.GetStaffByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Staff member not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteStaffHandler handles DELETE /api/staff/accounts/:id. Admin only.
func (h *StaffHandler) DeleteStaffHandler(c *gin.Context) {
	staffID := c.GetString(middleware.ContextStaffID)
	id := c.Param("id")
	if id == staffID {
		utils.JSONError(c, http.StatusBadRequest, "Failed to delete staff member", "you cannot delete your own account")
		return
	}
	if err := h.Service.DeleteStaff(id); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
