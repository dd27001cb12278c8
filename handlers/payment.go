package handlers

import (
	"net/http"

	"driveacademy/middleware"
	"driveacademy/models"
	"driveacademy/services/payment"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves manual payment endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

// ListPaymentsHandler handles GET /api/staff/payments. Optional enrollmentId
// or customerId queries narrow the listing.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	var (
		payments []models.PaymentResponse
		err      error
	)
	switch {
	case c.Query("enrollmentId") != "":
		payments, err = h.Service.GetEnrollmentPayments(c.Query("enrollmentId"))
	case c.Query("customerId") != "":
		payments, err = h.Service.GetCustomerPayments(c.Query("customerId"))
	default:
		payments, err = h.Service.GetAllPayments()
	}
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetPaymentHandler handles GET /api/staff/payments/:id.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	resp, err := h.Service.GetPaymentByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Payment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPaymentHandler handles POST /api/staff/payments.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var req models.PaymentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment request", err.Error())
		return
	}

	resp, err := h.Service.RecordPayment(req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdatePaymentHandler handles PUT /api/staff/payments/:id.
func (h *PaymentHandler) UpdatePaymentHandler(c *gin.Context) {
	var req models.PaymentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment update", err.Error())
		return
	}

	resp, err := h.Service.UpdatePayment(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePaymentHandler handles DELETE /api/staff/payments/:id. Admin only.
func (h *PaymentHandler) DeletePaymentHandler(c *gin.Context) {
	if err := h.Service.DeletePayment(c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}

// ListMyPaymentsHandler handles GET /api/customers/me/payments.
func (h *PaymentHandler) ListMyPaymentsHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	payments, err := h.Service.GetCustomerPayments(customerID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}
