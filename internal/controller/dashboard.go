package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats dashboard aggregates.
// @Tags DASHBOARD
// @Summary dashboard stats.
// @Schemes
// @Description client count, pending follow-ups, sends in the trailing week
// @Description and the response rate over sent messages.
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Router /api/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	stats, err := dashboardService.GetDashboardStats(c.Request.Context(), ownerID(c))
	if err != nil {
		dashboardLogger.Error("GetDashboardStats", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving dashboard stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
