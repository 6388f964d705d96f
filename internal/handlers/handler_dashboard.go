package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/middleware"
)

// dashboardHandler serves the one-call dashboard rollup.
type dashboardHandler struct {
	reportingService ports.ReportingService
}

func registerDashboardRoutes(rg *gin.RouterGroup, reportingService ports.ReportingService) {
	h := &dashboardHandler{reportingService: reportingService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard rollup
// @Description Returns today's stats, the cash position, per-account balances and the 7-day income series.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
