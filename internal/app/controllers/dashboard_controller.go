package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/services"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
)

// DashboardController serves role-specific dashboard counters
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats returns the dashboard payload for the caller's role
// @Summary Get dashboard statistics
// @Description Admins get platform totals, landlords get listing and revenue counters, students get booking counters.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx.Request.Context(), middleware.CallerID(ctx), middleware.CallerRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}
