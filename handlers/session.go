package handlers

import (
	"net/http"

	"driveacademy/middleware"
	"driveacademy/models"
	"driveacademy/services/session"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves session scheduling and enrollment endpoints.
type SessionHandler struct {
	Service session.SessionService
}

// ListSessionsHandler handles GET /api/staff/sessions.
func (h *SessionHandler) ListSessionsHandler(c *gin.Context) {
	sessions, err := h.Service.GetAllSessions()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSessionHandler handles GET /api/staff/sessions/:id.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	resp, err := h.Service.GetSessionByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSessionHandler handles POST /api/staff/sessions.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	var req models.SessionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid session request", err.Error())
		return
	}

	resp, err := h.Service.CreateSession(req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateSessionHandler handles PUT /api/staff/sessions/:id.
func (h *SessionHandler) UpdateSessionHandler(c *gin.Context) {
	var req models.SessionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid session update", err.Error())
		return
	}

	resp, err := h.Service.UpdateSession(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update session", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSessionHandler handles DELETE /api/staff/sessions/:id.
func (h *SessionHandler) DeleteSessionHandler(c *gin.Context) {
	if err := h.Service.DeleteSession(c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// ListAvailableSessionsHandler handles GET /api/sessions/available.
func (h *SessionHandler) ListAvailableSessionsHandler(c *gin.Context) {
	sessions, err := h.Service.GetAvailableSessions()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list available sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// ListMySessionsHandler handles GET /api/customers/me/sessions.
func (h *SessionHandler) ListMySessionsHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	sessions, err := h.Service.GetCustomerSessions(customerID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// EnrollHandler handles POST /api/sessions/:id/enroll.
func (h *SessionHandler) EnrollHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	result, err := h.Service.Enroll(customerID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Enrollment failed", err.Error())
		return
	}
	if !result.Success {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelEnrollmentHandler handles DELETE /api/sessions/:id/enroll.
func (h *SessionHandler) CancelEnrollmentHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	result, err := h.Service.CancelEnrollment(customerID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Cancellation failed", err.Error())
		return
	}
	if !result.Success {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
