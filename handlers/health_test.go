package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"driveacademy/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func healthResponse(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	HealthHandler(c)
	return w
}

func TestHealthHandlerBeforeFirstCheck(t *testing.T) {
	utils.SetHealthStatus(utils.HealthStatus{})

	w := healthResponse(t)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"starting"`)
}

func TestHealthHandlerDegraded(t *testing.T) {
	utils.SetHealthStatus(utils.HealthStatus{Mongo: false, Redis: true, CheckedAt: time.Now()})
	defer utils.SetHealthStatus(utils.HealthStatus{})

	w := healthResponse(t)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestHealthHandlerHealthy(t *testing.T) {
	utils.SetHealthStatus(utils.HealthStatus{Mongo: true, Redis: true, CheckedAt: time.Now()})
	defer utils.SetHealthStatus(utils.HealthStatus{})

	w := healthResponse(t)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
