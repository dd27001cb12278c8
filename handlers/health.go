package handlers

import (
	"net/http"

	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest dependency snapshot. A
// zero CheckedAt means the monitor has not completed its first check yet; that
// is reported as starting rather than unhealthy.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	switch {
	case status.CheckedAt.IsZero():
		state = "starting"
	case !status.Mongo:
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{
		"status":    state,
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}
