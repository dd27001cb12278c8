package handlers

import (
	"net/http"

	"driveacademy/middleware"
	"driveacademy/models"
	"driveacademy/services/material"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// MaterialHandler serves training-material metadata endpoints.
type MaterialHandler struct {
	Service material.MaterialService
}

// ListMaterialsHandler handles GET /api/staff/materials.
func (h *MaterialHandler) ListMaterialsHandler(c *gin.Context) {
	materials, err := h.Service.GetAllMaterials()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list materials", err.Error())
		return
	}
	c.JSON(http.StatusOK, materials)
}

// GetMaterialHandler handles GET /api/staff/materials/:id.
func (h *MaterialHandler) GetMaterialHandler(c *gin.Context) {
	mat, err := h.Service.GetMaterialByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Material not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, mat)
}

// ListMaterialsForCustomerHandler handles GET /api/customers/me/materials.
// The licenseType query selects the license category.
func (h *MaterialHandler) ListMaterialsForCustomerHandler(c *gin.Context) {
	customerID := c.GetString(middleware.ContextCustomerID)
	licenseType := c.Query("licenseType")
	if licenseType == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid material request", "licenseType query parameter is required")
		return
	}

	materials, err := h.Service.GetMaterialsForCustomer(customerID, licenseType)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list materials", err.Error())
		return
	}
	c.JSON(http.StatusOK, materials)
}

// CreateMaterialHandler handles POST /api/staff/materials.
func (h *MaterialHandler) CreateMaterialHandler(c *gin.Context) {
	var req models.MaterialCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid material request", err.Error())
		return
	}

	staffID := c.GetString(middleware.ContextStaffID)
	mat, err := h.Service.CreateMaterial(req, staffID)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create material", err.Error())
		return
	}
	c.JSON(http.StatusCreated, mat)
}

// UpdateMaterialHandler handles PUT /api/staff/materials/:id.
func (h *MaterialHandler) UpdateMaterialHandler(c *gin.Context) {
	var req models.MaterialUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid material update", err.Error())
		return
	}

	mat, err := h.Service.UpdateMaterial(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update material", err.Error())
		return
	}
	c.JSON(http.StatusOK, mat)
}

// RegisterDownloadHandler handles POST /api/customers/me/materials/:id/download.
func (h *MaterialHandler) RegisterDownloadHandler(c *gin.Context) {
	mat, err := h.Service.RegisterDownload(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to register download", err.Error())
		return
	}
	c.JSON(http.StatusOK, mat)
}

// DeleteMaterialHandler handles DELETE /api/staff/materials/:id.
func (h *MaterialHandler) DeleteMaterialHandler(c *gin.Context) {
	if err := h.Service.DeleteMaterial(c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete material", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material deleted"})
}
