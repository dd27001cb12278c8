package handlers

import (
	"net/http"
	"time"

	"driveacademy/services/report"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the staff reports dashboard.
type ReportHandler struct {
	Service report.ReportService
}

// SummaryHandler handles GET /api/staff/reports/summary. The optional from
// and to queries take RFC 3339 timestamps or plain dates (2006-01-02).
func (h *ReportHandler) SummaryHandler(c *gin.Context) {
	from, err := parseReportTime(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid report range", "from: "+err.Error())
		return
	}
	to, err := parseReportTime(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid report range", "to: "+err.Error())
		return
	}

	summary, err := h.Service.GetSummary(from, to)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "Failed to build report", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func parseReportTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
