package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	apperrors "github.com/mehedihb/kagojghor-backend/internal/errors"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats returns the landing-page counters
// GET /api/v1/dashboard/stats
func (ctrl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctrl.dashboardService.GetStats()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
