package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgiurgev/portfolio42/internal/controller"

	"github.com/gin-gonic/gin"
	"gotest.tools/v3/assert"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	healthController := controller.NewHealthController(router.Group("/api"))
	healthController.SetupRoutes()

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/healthcheck", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
