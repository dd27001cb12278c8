package handlers

import (
	"net/http"

	"driveacademy/models"
	"driveacademy/services/program"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// ProgramHandler serves training-program endpoints.
type ProgramHandler struct {
	Service program.ProgramService
}

// ListProgramsHandler handles GET /api/programs. Public.
func (h *ProgramHandler) ListProgramsHandler(c *gin.Context) {
	programs, err := h.Service.GetAllPrograms()
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to list programs", err.Error())
		return
	}
	c.JSON(http.StatusOK, programs)
}

// GetProgramHandler handles GET /api/programs/:id. Public.
func (h *ProgramHandler) GetProgramHandler(c *gin.Context) {
	prog, err := h.Service.GetProgramByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Program not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, prog)
}

// CreateProgramHandler handles POST /api/staff/programs.
func (h *ProgramHandler) CreateProgramHandler(c *gin.Context) {
	var req models.ProgramCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid program request", err.Error())
		return
	}

	prog, err := h.Service.CreateProgram(req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to create program", err.Error())
		return
	}
	c.JSON(http.StatusCreated, prog)
}

// UpdateProgramHandler handles PUT /api/staff/programs/:id.
func (h *ProgramHandler) UpdateProgramHandler(c *gin.Context) {
	var req models.ProgramUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid program update", err.Error())
		return
	}

	prog, err := h.Service.UpdateProgram(c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to update program", err.Error())
		return
	}
	c.JSON(http.StatusOK, prog)
}

// DeleteProgramHandler handles DELETE /api/staff/programs/:id. Admin only.
func (h *ProgramHandler) DeleteProgramHandler(c *gin.Context) {
	if err := h.Service.DeleteProgram(c.Param("id")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to delete program", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted"})
}
