package handlers

import (
	"net/http"

	"driveacademy/middleware"
	"driveacademy/models"
	"driveacademy/services/enrollment"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// EnrollmentHandler serves program-enrollment endpoints.
type EnrollmentHandler struct {
	Service enrollment.EnrollmentService
}

// ListEnrollmentsHandler handles GET /api/staff/enrollments. Optional
// programId or customerId queries narrow the listing.
func (h *EnrollmentHandler) ListEnrollmentsHandler(c *gin.Context) {
	var (
		enrollments []models.EnrollmentResponse
		err         error
	)
	switch {
	case c.Query("programId") != "":
		enrollments, err = h.Service.GetProgramEnrollments(c.Query("programId"))
	case c.Query("customerId") != "":
		enrollments, err = h.Service.GetCustomerEnrollments(c.Query("customerId"))
	default:
		enrollments, err = h.Service.GetAllEnrollments()
	}
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list enrollments", err.Error())
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// GetMyEnrollmentHandler handles GET /api/customers/me/enrollments/:id. The
// enrollment must belong to the authenticated customer.
func (h *EnrollmentHandler) GetMyEnrollmentHandler(c *gin.Context) {
	resp, err := h.Service.GetEnrollmentByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Enrollment not found", err.Error())
		return
	}
	if resp.CustomerID != c.GetString(middleware.ContextCustomerID) {
		utils.JSONError(c, http.StatusNotFound, "Enrollment not found", "no such enrollment")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetEnrollmentHandler handles GET /api/staff/enrollments/:id.
func (h *EnrollmentHandler) GetEnrollmentHandler(c *gin.Context) {
	resp, err := h.Service.GetEnrollmentByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Enrollment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateEnrollmentHandler handles POST /api/staff/enrollments.
func (h *EnrollmentHandler) CreateEnrollmentHandler(c *gin.Context) {
	var req models.EnrollmentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid enrollment request", err.Error())
		return
	}

	resp, err := h.Service.CreateEnrollment(req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create enrollment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateEnrollmentHandler handles PUT /api/staff/enrollments/:id.
func (h *EnrollmentHandler) UpdateEnrollmentHandler(c *gin.Context) {
	var req models.EnrollmentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid enrollment update", err.Error())
		return
	}

	resp, err := h.Service.UpdateEnrollment(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update enrollment", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteEnrollmentHandler handles DELETE /api/staff/enrollments/:id.
func (h *EnrollmentHandler) DeleteEnrollmentHandler(c *gin.Context) {
	if err := h.Service.DeleteEnrollment(c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete enrollment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrollment deleted"})
}

// ListMyEnrollmentsHandler handles GET /api/customers/me/enrollments.
func (h *EnrollmentHandler) ListMyEnrollmentsHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	enrollments, err := h.Service.GetCustomerEnrollments(customerID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list enrollments", err.Error())
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
