package handlers

import (
	"net/http"

	"driveacademy/middleware"
	"driveacademy/models"
	"driveacademy/services/feedback"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler serves instructor feedback endpoints.
type FeedbackHandler struct {
	Service feedback.FeedbackService
}

// ListFeedbackHandler handles GET /api/staff/feedback. Optional sessionId,
// customerId or instructorId queries narrow the listing.
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	var (
		entries []models.FeedbackResponse
		err     error
	)
	switch {
	case c.Query("sessionId") != "":
		entries, err = h.Service.GetSessionFeedback(c.Query("sessionId"))
	case c.Query("customerId") != "":
		entries, err = h.Service.GetCustomerFeedback(c.Query("customerId"))
	case c.Query("instructorId") != "":
		entries, err = h.Service.GetInstructorFeedback(c.Query("instructorId"))
	default:
		entries, err = h.Service.GetAllFeedback()
	}
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetFeedbackHandler handles GET /api/staff/feedback/:id.
func (h *FeedbackHandler) GetFeedbackHandler(c *gin.Context) {
	entry, err := h.Service.GetFeedbackByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Feedback not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateFeedbackHandler handles POST /api/staff/feedback. The authenticated
// staff member is recorded as the filing instructor.
func (h *FeedbackHandler) CreateFeedbackHandler(c *gin.Context) {
	var req models.FeedbackCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid feedback request", err.Error())
		return
	}

	instructorID := c.GetString(middleware.ContextStaffID)
	entry, err := h.Service.CreateFeedback(instructorID, req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create feedback", err.Error())
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateFeedbackHandler handles PUT /api/staff/feedback/:id.
func (h *FeedbackHandler) UpdateFeedbackHandler(c *gin.Context) {
	var req models.FeedbackUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid feedback update", err.Error())
		return
	}

	entry, err := h.Service.UpdateFeedback(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteFeedbackHandler handles DELETE /api/staff/feedback/:id.
func (h *FeedbackHandler) DeleteFeedbackHandler(c *gin.Context) {
	if err := h.Service.DeleteFeedback(c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
}

// ListMyFeedbackHandler handles GET /api/customers/me/feedback.
func (h *FeedbackHandler) ListMyFeedbackHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	entries, err := h.Service.GetCustomerFeedback(customerID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}
